// Package content defines the page payload shapes the rendering layer consumes.
package content

// HeroContent is the hero block of the home page.
type HeroContent struct {
	LogoUrl   string `json:"logoUrl"`
	LogoAlt   string `json:"logoAlt"`
	VideoUrl  string `json:"videoUrl,omitempty"`
	PosterUrl string `json:"posterUrl,omitempty"`
}

// IntroContent is the introduction block of the home page.
type IntroContent struct {
	Headline string `json:"headline"`
	CtaText  string `json:"ctaText"`
	CtaUrl   string `json:"ctaUrl"`
}

// VideoMaskContent is the masked video/image block.
type VideoMaskContent struct {
	ImageUrl string `json:"imageUrl"`
}

// AboutContent is the brand story block of the home page.
type AboutContent struct {
	Title           string `json:"title"`
	TitleItalicPart string `json:"titleItalicPart,omitempty"`
	Body            string `json:"body"`
	CtaText         string `json:"ctaText"`
	CtaUrl          string `json:"ctaUrl"`
}

// Lodge is one property in the lodge carousel.
type Lodge struct {
	Name     string `json:"name"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	ImageUrl string `json:"imageUrl"`
	IconUrl  string `json:"iconUrl,omitempty"`
}

// LodgeCarouselContent is the carousel block of the home page.
type LodgeCarouselContent struct {
	Title  string  `json:"title"`
	Lodges []Lodge `json:"lodges"`
}

// WhyBeckonsCard is one card in the "why Beckons" block.
type WhyBeckonsCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl"`
}

// WhyBeckonsContent is the "why Beckons" block of the home page.
type WhyBeckonsContent struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Cards       []WhyBeckonsCard `json:"cards"`
}

// HomePageData is the nested payload shape of the page-content/home entry.
type HomePageData struct {
	Hero             HeroContent          `json:"hero"`
	Intro            IntroContent         `json:"intro"`
	VideoMask        VideoMaskContent     `json:"videoMask"`
	About            AboutContent         `json:"about"`
	LodgeCarousel    LodgeCarouselContent `json:"lodgeCarousel"`
	WhyBeckons       WhyBeckonsContent    `json:"whyBeckons"`
	StickyButtonText string               `json:"stickyButtonText"`
}

// FormPageData is the flat payload shape shared by the inquire and
// email-subscription pages. Fields absent from a given page stay empty.
type FormPageData struct {
	Title                    string `json:"title"`
	TitleItalicPart          string `json:"titleItalicPart,omitempty"`
	Subtitle                 string `json:"subtitle"`
	MetaTitle                string `json:"metaTitle"`
	MetaDescription          string `json:"metaDescription"`
	VideoMaskImageUrl        string `json:"videoMaskImageUrl"`
	FirstNameLabel           string `json:"firstNameLabel"`
	LastNameLabel            string `json:"lastNameLabel"`
	ContactEmailLabel        string `json:"contactEmailLabel"`
	ContactPhoneLabel        string `json:"contactPhoneLabel,omitempty"`
	CountryRegionLabel       string `json:"countryRegionLabel"`
	CountryRegionPlaceholder string `json:"countryRegionPlaceholder"`
	YourEnquiryLabel         string `json:"yourEnquiryLabel,omitempty"`
	SubscribeCheckboxText    string `json:"subscribeCheckboxText,omitempty"`
	PrivacyText              string `json:"privacyText"`
	PrivacyLinkText          string `json:"privacyLinkText"`
	PrivacyLinkUrl           string `json:"privacyLinkUrl"`
	SubmitButtonText         string `json:"submitButtonText"`
}

// ThankYouPageData is the payload shape of the thank-you page entry.
type ThankYouPageData struct {
	Title           string `json:"title"`
	TitleItalicPart string `json:"titleItalicPart,omitempty"`
	Message         string `json:"message"`
	CtaText         string `json:"ctaText"`
	CtaUrl          string `json:"ctaUrl"`
}

// FooterLodge is one property listed in the footer portfolio.
type FooterLodge struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// CountryLodges groups footer lodge listings by country.
type CountryLodges struct {
	Country string        `json:"country"`
	Lodges  []FooterLodge `json:"lodges"`
}

// FooterContent is the payload shape of the site-footer/global-footer entry.
type FooterContent struct {
	LogoUrl               string          `json:"logoUrl"`
	LogoAlt               string          `json:"logoAlt,omitempty"`
	NewsletterTitle       string          `json:"newsletterTitle"`
	NewsletterDescription string          `json:"newsletterDescription"`
	NewsletterButtonText  string          `json:"newsletterButtonText"`
	PortfolioTitle        string          `json:"portfolioTitle"`
	PortfolioDescription  string          `json:"portfolioDescription"`
	Lodges                []CountryLodges `json:"lodges"`
	CopyrightText         string          `json:"copyrightText"`
}

// SiteSettings is the payload shape of the site-settings/global-settings entry.
type SiteSettings struct {
	LogoUrl     string `json:"logoUrl"`
	LogoAlt     string `json:"logoAlt"`
	LogoIconUrl string `json:"logoIconUrl,omitempty"`
	BrandName   string `json:"brandName"`
}

// NavigationItem is one link in the global navigation entry.
type NavigationItem struct {
	Label string `json:"label"`
	Url   string `json:"url"`
}

// Navigation is the payload shape of the navigation/global-navigation entry.
type Navigation struct {
	Items []NavigationItem `json:"items"`
}
