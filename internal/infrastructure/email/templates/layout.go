// Package templates provides email template layout
package templates

import (
	"bytes"
	"html/template"
	"log"
)

type EmailLayoutProps struct {
	Preheader  string
	Content    string
	FooterText string
}

// Internal template data structure with safe HTML typing
type emailTemplateData struct {
	Preheader  string
	Content    template.HTML // Mark as safe HTML to prevent escaping
	FooterText string
}

// emailLayoutTemplate is the compiled template for email layout
var emailLayoutTemplate = template.Must(template.New("emailLayout").Parse(`
<!doctype html>
<html lang="en">
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
    <title>Beckons</title>
    <style media="all" type="text/css">
      @media only screen and (max-width: 640px) {
        .main p, .main td, .main span { font-size: 16px !important; }
        .wrapper { padding: 8px !important; }
        .container { padding: 0 !important; padding-top: 8px !important; width: 100% !important; }
        .main { border-left-width: 0 !important; border-radius: 0 !important; border-right-width: 0 !important; }
      }
    </style>
  </head>
  <body style="font-family: Georgia, serif; -webkit-font-smoothing: antialiased; font-size: 16px; line-height: 1.4; background-color: #f4f2ec; margin: 0; padding: 0;">
    <span class="preheader" style="color: transparent; display: none; height: 0; max-height: 0; max-width: 0; opacity: 0; overflow: hidden; visibility: hidden; width: 0;">{{.Preheader}}</span>
    <table role="presentation" border="0" cellpadding="0" cellspacing="0" class="body" style="border-collapse: separate; background-color: #f4f2ec; width: 100%;" width="100%" bgcolor="#f4f2ec">
      <tr>
        <td style="font-family: Georgia, serif; font-size: 16px; vertical-align: top;" valign="top">&nbsp;</td>
        <td class="container" style="font-family: Georgia, serif; font-size: 16px; vertical-align: top; max-width: 600px; padding: 0; padding-top: 24px; width: 600px; margin: 0 auto;" width="600" valign="top">
          <div class="content" style="box-sizing: border-box; display: block; margin: 0 auto; max-width: 600px; padding: 0;">
            <table role="presentation" border="0" cellpadding="0" cellspacing="0" class="main" style="border-collapse: separate; background: #ffffff; border: 1px solid #e3ddd0; border-radius: 8px; width: 100%;" width="100%">
              <tr>
                <td class="wrapper" style="font-family: Georgia, serif; font-size: 16px; vertical-align: top; box-sizing: border-box; padding: 32px;" valign="top">
                  {{.Content}}
                </td>
              </tr>
            </table>
            <div class="footer" style="clear: both; padding-top: 24px; text-align: center; width: 100%;">
              <span style="color: #9a9486; font-size: 13px; text-align: center;">{{.FooterText}}</span>
            </div>
          </div>
        </td>
        <td style="font-family: Georgia, serif; font-size: 16px; vertical-align: top;" valign="top">&nbsp;</td>
      </tr>
    </table>
  </body>
</html>`))

// GetEmailLayout renders content inside the shared email chrome.
func GetEmailLayout(props EmailLayoutProps) string {
	footerText := props.FooterText
	if footerText == "" {
		footerText = "Beckons. Uniting Baillie Lodges and Tierra Hotels."
	}

	data := emailTemplateData{
		Preheader:  props.Preheader,
		Content:    template.HTML(props.Content),
		FooterText: footerText,
	}

	var buf bytes.Buffer
	if err := emailLayoutTemplate.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to render email layout: %v", err)
		return props.Content
	}
	return buf.String()
}
