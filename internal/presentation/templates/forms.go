package templates

import (
	"fmt"
	"strings"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/content"
)

func renderFormTitle(b *strings.Builder, data *content.FormPageData) {
	fmt.Fprintf(b, "<h1>%s", esc(data.Title))
	if data.TitleItalicPart != "" {
		fmt.Fprintf(b, " <em>%s</em>", esc(data.TitleItalicPart))
	}
	b.WriteString("</h1>\n")
	if data.Subtitle != "" {
		fmt.Fprintf(b, "<p class=\"subtitle\">%s</p>\n", esc(data.Subtitle))
	}
}

func renderTextInput(b *strings.Builder, name, label string, required bool) {
	req := ""
	if required {
		req = " required"
	}
	fmt.Fprintf(b, "<label>%s<input type=\"text\" name=\"%s\"%s></label>\n", esc(label), name, req)
}

func renderPrivacyNote(b *strings.Builder, data *content.FormPageData) {
	fmt.Fprintf(b, "<p class=\"privacy\">%s <a href=\"%s\">%s</a></p>\n",
		esc(data.PrivacyText), esc(data.PrivacyLinkUrl), esc(data.PrivacyLinkText))
}

// RenderInquirePage renders the inquiry form body.
func RenderInquirePage(data *content.FormPageData) string {
	if data == nil {
		return RenderPlaceholder("This page is being prepared. Please check back soon.")
	}

	var b strings.Builder
	b.WriteString("<section class=\"form-page inquire\">\n")
	renderFormTitle(&b, data)
	if data.VideoMaskImageUrl != "" {
		fmt.Fprintf(&b, "<img class=\"form-mask\" src=\"%s\" alt=\"\">\n", esc(data.VideoMaskImageUrl))
	}

	b.WriteString("<form method=\"post\" action=\"/api/inquiries\" class=\"lead-form\">\n")
	renderTextInput(&b, "firstName", data.FirstNameLabel, true)
	renderTextInput(&b, "lastName", data.LastNameLabel, true)
	fmt.Fprintf(&b, "<label>%s<input type=\"email\" name=\"email\" required></label>\n", esc(data.ContactEmailLabel))
	if data.ContactPhoneLabel != "" {
		fmt.Fprintf(&b, "<label>%s<input type=\"tel\" name=\"phone\"></label>\n", esc(data.ContactPhoneLabel))
	}
	fmt.Fprintf(&b, "<label>%s<input type=\"text\" name=\"countryRegion\" placeholder=\"%s\"></label>\n",
		esc(data.CountryRegionLabel), esc(data.CountryRegionPlaceholder))
	fmt.Fprintf(&b, "<label>%s<textarea name=\"enquiry\" required></textarea></label>\n", esc(data.YourEnquiryLabel))
	if data.SubscribeCheckboxText != "" {
		fmt.Fprintf(&b, "<label class=\"checkbox\"><input type=\"checkbox\" name=\"subscribe\" value=\"true\">%s</label>\n",
			esc(data.SubscribeCheckboxText))
	}
	renderPrivacyNote(&b, data)
	fmt.Fprintf(&b, "<button type=\"submit\">%s</button>\n", esc(data.SubmitButtonText))
	b.WriteString("</form>\n</section>\n")

	return b.String()
}

// RenderSubscriptionPage renders the email-subscription form body.
func RenderSubscriptionPage(data *content.FormPageData) string {
	if data == nil {
		return RenderPlaceholder("This page is being prepared. Please check back soon.")
	}

	var b strings.Builder
	b.WriteString("<section class=\"form-page email-subscription\">\n")
	renderFormTitle(&b, data)

	b.WriteString("<form method=\"post\" action=\"/api/subscriptions\" class=\"lead-form\">\n")
	renderTextInput(&b, "firstName", data.FirstNameLabel, true)
	renderTextInput(&b, "lastName", data.LastNameLabel, true)
	fmt.Fprintf(&b, "<label>%s<input type=\"email\" name=\"email\" required></label>\n", esc(data.ContactEmailLabel))
	fmt.Fprintf(&b, "<label>%s<input type=\"text\" name=\"countryRegion\" placeholder=\"%s\"></label>\n",
		esc(data.CountryRegionLabel), esc(data.CountryRegionPlaceholder))
	renderPrivacyNote(&b, data)
	fmt.Fprintf(&b, "<button type=\"submit\">%s</button>\n", esc(data.SubmitButtonText))
	b.WriteString("</form>\n</section>\n")

	return b.String()
}

// RenderThankYouPage renders the post-submission confirmation body.
func RenderThankYouPage(data *content.ThankYouPageData) string {
	if data == nil {
		return RenderPlaceholder("Thank you. We will be in touch shortly.")
	}

	var b strings.Builder
	b.WriteString("<section class=\"thank-you\">\n")
	fmt.Fprintf(&b, "<h1>%s", esc(data.Title))
	if data.TitleItalicPart != "" {
		fmt.Fprintf(&b, " <em>%s</em>", esc(data.TitleItalicPart))
	}
	b.WriteString("</h1>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", esc(data.Message))
	if data.CtaText != "" {
		fmt.Fprintf(&b, "<a class=\"button\" href=\"%s\">%s</a>\n", esc(data.CtaUrl), esc(data.CtaText))
	}
	b.WriteString("</section>\n")

	return b.String()
}
