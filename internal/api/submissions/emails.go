package submissions

import (
	"fmt"
	"strings"
)

const emailFooter = `<div style="text-align: center; padding: 20px; background-color: #f8f9fa; color: #6b7280; font-size: 12px;">
  <p>&copy; 2025 Coshikowa Agency. All rights reserved.</p>
</div>`

func emailWrap(body string) string {
	return `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<div style="padding: 30px; background-color: white;">` + body + `</div>` + emailFooter + `</div>`
}

func detailRow(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", label, value)
}

func adminJobApplicationEmail(a *JobApplicationInput) string {
	var b strings.Builder
	b.WriteString(`<h1 style="color: #059669; border-bottom: 2px solid #059669; padding-bottom: 10px;">New Job Application</h1>`)

	b.WriteString(`<h2 style="color: #0284c7; margin-top: 25px;">Personal Information</h2>`)
	b.WriteString(detailRow("Full Name", a.FullName))
	b.WriteString(detailRow("Email", a.Email))
	b.WriteString(detailRow("Phone", a.Phone))
	b.WriteString(detailRow("Location", a.Location))
	b.WriteString(detailRow("Date of Birth", a.DateOfBirth))

	b.WriteString(`<h2 style="color: #0284c7; margin-top: 25px;">Professional Background</h2>`)
	b.WriteString(detailRow("Education", a.Education))
	b.WriteString(detailRow("Experience", a.Experience))
	b.WriteString(detailRow("Skills", a.Skills))

	b.WriteString(`<h2 style="color: #0284c7; margin-top: 25px;">Job Preferences</h2>`)
	b.WriteString(detailRow("Desired Position", a.DesiredPosition))
	b.WriteString(detailRow("Expected Salary", a.Salary))
	b.WriteString(detailRow("Availability", a.Availability))

	if a.AdditionalInfo != "" {
		b.WriteString(`<h2 style="color: #0284c7; margin-top: 25px;">Additional Information</h2>`)
		b.WriteString(fmt.Sprintf(`<p style="line-height: 1.6;">%s</p>`, a.AdditionalInfo))
	}

	return emailWrap(b.String())
}

func adminHiringRequestEmail(r *HiringRequestInput) string {
	var b strings.Builder
	b.WriteString(`<h1 style="color: #059669; border-bottom: 2px solid #059669; padding-bottom: 10px;">New Hiring Request</h1>`)

	b.WriteString(`<h2 style="color: #0284c7; margin-top: 25px;">Company Information</h2>`)
	b.WriteString(detailRow("Company Name", r.CompanyName))
	b.WriteString(detailRow("Contact Person", r.ContactPerson))
	b.WriteString(detailRow("Email", r.Email))
	b.WriteString(detailRow("Phone", r.Phone))
	b.WriteString(detailRow("Industry", r.Industry))

	b.WriteString(`<h2 style="color: #0284c7; margin-top: 25px;">Position Details</h2>`)
	b.WriteString(detailRow("Position", r.Position))
	b.WriteString(detailRow("Job Category", r.JobCategory))
	b.WriteString(detailRow("Age Range", r.AgeRange))
	b.WriteString(detailRow("Urgency", r.Urgency))

	if r.Requirements != "" {
		b.WriteString(`<h2 style="color: #0284c7; margin-top: 25px;">Requirements</h2>`)
		b.WriteString(fmt.Sprintf(`<p style="line-height: 1.6;">%s</p>`, r.Requirements))
	}

	return emailWrap(b.String())
}

func applicantConfirmationEmail(a *JobApplicationInput) string {
	return emailWrap(fmt.Sprintf(`<h1 style="color: #059669; border-bottom: 2px solid #059669; padding-bottom: 10px;">Application Received</h1>
<p>Dear %s,</p>
<p style="line-height: 1.6;">Thank you for applying for the position of <strong>%s</strong> at Coshikowa Agency.</p>
<p style="line-height: 1.6;">We have successfully received your application and our team will review it carefully. If your qualifications match our requirements, we will contact you within 5-7 business days to discuss the next steps.</p>
<div style="margin: 25px 0; padding: 20px; background-color: #f0f9ff; border-left: 4px solid #0284c7;">
  <h3 style="margin-top: 0; color: #0284c7;">What happens next?</h3>
  <ul style="line-height: 1.8; margin: 0;">
    <li>Our recruitment team will review your application</li>
    <li>Qualified candidates will be contacted for an interview</li>
    <li>We will keep your application on file for future opportunities</li>
  </ul>
</div>
<p style="line-height: 1.6;">If you have any questions, please feel free to contact us at <a href="mailto:info@coshikowaagency.com" style="color: #0284c7;">info@coshikowaagency.com</a>.</p>
<p style="margin-top: 30px;">Best regards,<br><strong>Coshikowa Agency Recruitment Team</strong></p>`,
		a.FullName, a.DesiredPosition))
}

func employerConfirmationEmail(r *HiringRequestInput) string {
	return emailWrap(fmt.Sprintf(`<h1 style="color: #059669; border-bottom: 2px solid #059669; padding-bottom: 10px;">Hiring Request Received</h1>
<p>Dear %s,</p>
<p style="line-height: 1.6;">Thank you for your hiring request for the position of <strong>%s</strong>.</p>
<p style="line-height: 1.6;">Our team has received your requirements and will begin matching qualified candidates right away. We will contact you within 2-3 business days with a shortlist of suitable profiles.</p>
<p style="line-height: 1.6;">If you have any questions, please feel free to contact us at <a href="mailto:info@coshikowaagency.com" style="color: #0284c7;">info@coshikowaagency.com</a>.</p>
<p style="margin-top: 30px;">Best regards,<br><strong>Coshikowa Agency Team</strong></p>`,
		r.ContactPerson, r.Position))
}
