package email

import (
	"bytes"
	"fmt"
	"text/template"
)

// Templates are rendered with text/template: every dynamic value must already
// be HTML-escaped by the caller (see pkg/htmlsafe). Static markup is emitted verbatim.

// ContactView holds escaped contact-form values.
type ContactView struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Service string
	Message string
}

// BookingView holds escaped booking values. PreferredDate is the display form.
type BookingView struct {
	Name          string
	Email         string
	Phone         string
	Company       string
	PreferredDate string
	Message       string
}

const contactUserTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1a365d;">Thank you for contacting us, {{.Name}}!</h1>
  <p>We have received your message and one of our team members will get back to you within 24 hours.</p>
  <div style="background-color: #f7fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #2d3748; margin-top: 0;">Your Message Details:</h3>
    {{if .Service}}<p><strong>Service Interest:</strong> {{.Service}}</p>{{end}}
    <p><strong>Message:</strong></p>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>
  <p>Best regards,<br>The Episolve Team</p>
</div>
`

const contactAdminTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1a365d;">New Contact Form Submission</h1>
  <div style="background-color: #f7fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
    {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
    {{if .Service}}<p><strong>Service Interest:</strong> {{.Service}}</p>{{end}}
    <p><strong>Message:</strong></p>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>
</div>
`

const bookingUserTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1a365d;">Thank you for booking a Strategic Audit, {{.Name}}!</h1>
  <p>We've received your consultation request and our team will be in touch shortly to confirm your appointment.</p>
  <div style="background-color: #f7fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #2d3748; margin-top: 0;">Booking Details:</h3>
    <p><strong>Preferred Date:</strong> {{.PreferredDate}}</p>
    {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
    {{if .Message}}<p><strong>Additional Notes:</strong> {{.Message}}</p>{{end}}
  </div>
  <h3 style="color: #2d3748;">What to Expect:</h3>
  <ul>
    <li>A team member will contact you within 24 hours</li>
    <li>We'll discuss your specific challenges and goals</li>
    <li>You'll receive a tailored action plan</li>
  </ul>
  <p>Best regards,<br>The Episolve Team</p>
</div>
`

const bookingAdminTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1a365d;">New Strategic Audit Booking</h1>
  <div style="background-color: #f7fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
    {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
    <p><strong>Preferred Date:</strong> {{.PreferredDate}}</p>
    {{if .Message}}<p><strong>Additional Notes:</strong> {{.Message}}</p>{{end}}
  </div>
</div>
`

const welcomeTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1a1a1a;">Welcome to Episolve!</h1>
  <p>Thank you for subscribing to our newsletter. You'll receive insights on:</p>
  <ul>
    <li>Technology strategy and leadership</li>
    <li>Cybersecurity and risk management</li>
    <li>Digital transformation trends</li>
  </ul>
  <p>We look forward to sharing valuable insights with you.</p>
  <p style="color: #666;">Best regards,<br>The Episolve Team</p>
</div>
`

var (
	contactUserTmpl  = template.Must(template.New("contact_user").Parse(contactUserTemplate))
	contactAdminTmpl = template.Must(template.New("contact_admin").Parse(contactAdminTemplate))
	bookingUserTmpl  = template.Must(template.New("booking_user").Parse(bookingUserTemplate))
	bookingAdminTmpl = template.Must(template.New("booking_admin").Parse(bookingAdminTemplate))
	welcomeTmpl      = template.Must(template.New("welcome").Parse(welcomeTemplate))
)

func RenderContactUser(v ContactView) (string, error)  { return render(contactUserTmpl, v) }
func RenderContactAdmin(v ContactView) (string, error) { return render(contactAdminTmpl, v) }
func RenderBookingUser(v BookingView) (string, error)  { return render(bookingUserTmpl, v) }
func RenderBookingAdmin(v BookingView) (string, error) { return render(bookingAdminTmpl, v) }

// RenderWelcome has no dynamic content.
func RenderWelcome() (string, error) { return render(welcomeTmpl, nil) }

func render(tmpl *template.Template, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	return body.String(), nil
}
