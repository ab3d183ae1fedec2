// Package templates provides email template content blocks
package templates

import (
	"bytes"
	"html/template"
	"log"
)

// InquiryNotificationProps carries one inquiry into the operator notification email.
type InquiryNotificationProps struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	CountryRegion string
	Enquiry       string
	Subscribed    bool
}

var inquiryNotificationTemplate = template.Must(template.New("inquiryNotification").Parse(`
<h2 style="font-family: Georgia, serif; font-size: 22px; font-weight: normal; margin: 0 0 16px;">New inquiry received</h2>
<p style="font-size: 16px; margin: 0 0 8px;"><strong>{{.FirstName}} {{.LastName}}</strong> &lt;{{.Email}}&gt;</p>
{{if .Phone}}<p style="font-size: 16px; margin: 0 0 8px;">Phone: {{.Phone}}</p>{{end}}
{{if .CountryRegion}}<p style="font-size: 16px; margin: 0 0 8px;">Country/Region: {{.CountryRegion}}</p>{{end}}
<p style="font-size: 16px; margin: 16px 0 8px;">Enquiry:</p>
<blockquote style="font-size: 16px; margin: 0 0 16px; padding-left: 16px; border-left: 3px solid #e3ddd0;">{{.Enquiry}}</blockquote>
{{if .Subscribed}}<p style="font-size: 14px; color: #9a9486; margin: 0;">Also subscribed to email updates.</p>{{end}}`))

// GetInquiryNotificationContent renders the operator notification body for an inquiry.
func GetInquiryNotificationContent(props InquiryNotificationProps) string {
	var buf bytes.Buffer
	if err := inquiryNotificationTemplate.Execute(&buf, props); err != nil {
		log.Printf("ERROR: Failed to render inquiry notification: %v", err)
		return ""
	}
	return buf.String()
}

// SubscriptionWelcomeProps carries a new subscriber into the welcome email.
type SubscriptionWelcomeProps struct {
	FirstName string
}

var subscriptionWelcomeTemplate = template.Must(template.New("subscriptionWelcome").Parse(`
<h2 style="font-family: Georgia, serif; font-size: 22px; font-weight: normal; margin: 0 0 16px;">The world beckons{{if .FirstName}}, {{.FirstName}}{{end}}.</h2>
<p style="font-size: 16px; margin: 0 0 16px;">Thank you for joining us. You will be among the first to hear when Beckons opens its doors to remarkable journeys of discovery.</p>
<p style="font-size: 16px; margin: 0;">Until then, the journey begins March 2026.</p>`))

// GetSubscriptionWelcomeContent renders the subscriber welcome body.
func GetSubscriptionWelcomeContent(props SubscriptionWelcomeProps) string {
	var buf bytes.Buffer
	if err := subscriptionWelcomeTemplate.Execute(&buf, props); err != nil {
		log.Printf("ERROR: Failed to render subscription welcome: %v", err)
		return ""
	}
	return buf.String()
}
