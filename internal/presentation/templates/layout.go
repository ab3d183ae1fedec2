// Package templates renders server-side HTML for the site pages.
package templates

import (
	"fmt"
	"html"
	"strings"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/content"
)

// PageChrome carries the global content every page shares. Any field may be
// nil; the shell degrades to an empty block rather than failing the render.
type PageChrome struct {
	Settings        *content.SiteSettings
	Navigation      *content.Navigation
	Footer          *content.FooterContent
	MetaTitle       string
	MetaDescription string
	EditMode        bool
}

func esc(s string) string {
	return html.EscapeString(s)
}

// RenderPage wraps a rendered body in the shared page shell.
func RenderPage(chrome PageChrome, body string) string {
	var b strings.Builder

	title := chrome.MetaTitle
	if title == "" && chrome.Settings != nil {
		title = chrome.Settings.BrandName
	}
	if title == "" {
		title = "Beckons"
	}

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", esc(title))
	if chrome.MetaDescription != "" {
		fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", esc(chrome.MetaDescription))
	}
	b.WriteString("<link rel=\"stylesheet\" href=\"/static/site.css\">\n")
	b.WriteString("</head>\n<body>\n")

	b.WriteString(renderHeader(chrome))
	b.WriteString(body)
	b.WriteString(renderFooter(chrome.Footer))

	if chrome.EditMode {
		b.WriteString("<script src=\"/static/inline-editor.js\" defer></script>\n")
	}
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

func renderHeader(chrome PageChrome) string {
	var b strings.Builder
	b.WriteString("<header class=\"site-header\">\n")

	if chrome.Settings != nil && chrome.Settings.LogoUrl != "" {
		fmt.Fprintf(&b, "<a href=\"/\" class=\"site-logo\"><img src=\"%s\" alt=\"%s\"></a>\n",
			esc(chrome.Settings.LogoUrl), esc(chrome.Settings.LogoAlt))
	}

	if chrome.Navigation != nil && len(chrome.Navigation.Items) > 0 {
		b.WriteString("<nav class=\"site-nav\">\n")
		for _, item := range chrome.Navigation.Items {
			fmt.Fprintf(&b, "<a href=\"%s\">%s</a>\n", esc(item.Url), esc(item.Label))
		}
		b.WriteString("</nav>\n")
	}

	b.WriteString("</header>\n")
	return b.String()
}

func renderFooter(footer *content.FooterContent) string {
	if footer == nil {
		return "<footer class=\"site-footer\"></footer>\n"
	}

	var b strings.Builder
	b.WriteString("<footer class=\"site-footer\">\n")

	if footer.LogoUrl != "" {
		fmt.Fprintf(&b, "<img class=\"footer-logo\" src=\"%s\" alt=\"%s\">\n", esc(footer.LogoUrl), esc(footer.LogoAlt))
	}

	b.WriteString("<section class=\"footer-newsletter\">\n")
	fmt.Fprintf(&b, "<h3>%s</h3>\n<p>%s</p>\n", esc(footer.NewsletterTitle), esc(footer.NewsletterDescription))
	fmt.Fprintf(&b, "<a class=\"button\" href=\"/email-subscription\">%s</a>\n", esc(footer.NewsletterButtonText))
	b.WriteString("</section>\n")

	if len(footer.Lodges) > 0 {
		b.WriteString("<section class=\"footer-portfolio\">\n")
		fmt.Fprintf(&b, "<h3>%s</h3>\n<p>%s</p>\n", esc(footer.PortfolioTitle), esc(footer.PortfolioDescription))
		b.WriteString("<ul class=\"footer-lodges\">\n")
		for _, country := range footer.Lodges {
			fmt.Fprintf(&b, "<li><strong>%s</strong><ul>\n", esc(country.Country))
			for _, lodge := range country.Lodges {
				fmt.Fprintf(&b, "<li>%s<span class=\"lodge-location\">%s</span></li>\n", esc(lodge.Name), esc(lodge.Location))
			}
			b.WriteString("</ul></li>\n")
		}
		b.WriteString("</ul>\n</section>\n")
	}

	if footer.CopyrightText != "" {
		fmt.Fprintf(&b, "<p class=\"footer-copyright\">%s</p>\n", esc(footer.CopyrightText))
	}

	b.WriteString("</footer>\n")
	return b.String()
}
