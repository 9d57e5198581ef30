package payments

import (
	"fmt"

	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/payments"
)

func typeLabel(paymentType string) string {
	if paymentType == payments.TypeJobApplication {
		return "Job Application"
	}
	return "Hiring Request"
}

func methodLabel(method string) string {
	switch method {
	case payments.MethodMpesa:
		return "M-Pesa (+254 715957054)"
	case payments.MethodMobileMoneyUganda:
		return "Mobile Money Uganda (+256 775123456)"
	default:
		return "Bank Transfer (Equity 0286265672)"
	}
}

func staffReviewEmail(p *payments.Payment, proofURL, method, email, approvalURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
      <h1>New Payment Proof Submitted</h1>
      <p style="margin: 0; opacity: 0.9;">Review and Approve Payment</p>
    </div>
    <div style="background: #f9fafb; padding: 30px; border: 1px solid #e5e7eb;">
      <p>Hello,</p>
      <p>A new payment proof has been submitted for review:</p>
      <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #667eea;">
        <h3 style="margin-top: 0; color: #667eea;">Payment Details</h3>
        <p><strong>Type:</strong> %s</p>
        <p><strong>Amount:</strong> KES %.0f</p>
        <p><strong>Payment Method:</strong> %s</p>
        <p><strong>Customer Email:</strong> %s</p>
        <p><strong>Payment ID:</strong> %s</p>
      </div>
      <div style="margin: 20px 0; text-align: center;">
        <p><strong>Payment Proof:</strong></p>
        <a href="%s" target="_blank">
          <img src="%s" alt="Payment Proof" style="max-width: 100%%; border-radius: 8px; border: 2px solid #e5e7eb;" />
        </a>
        <p style="font-size: 12px; color: #6b7280;">Click image to view full size</p>
      </div>
      <div style="text-align: center; margin: 30px 0;">
        <a href="%s" style="display: inline-block; background: #10b981; color: white; padding: 16px 40px; text-decoration: none; border-radius: 8px; font-weight: bold;">
          APPROVE &amp; SUBMIT APPLICATION
        </a>
      </div>
      <div style="background: #fef3c7; border-left: 4px solid #f59e0b; padding: 15px; margin: 20px 0; border-radius: 4px;">
        <strong>Important:</strong> Clicking the approve button will:
        <ul style="margin: 10px 0;">
          <li>Mark the payment as completed</li>
          <li>Automatically submit the application to your email</li>
          <li>Notify the customer of approval</li>
        </ul>
      </div>
    </div>
    <div style="text-align: center; padding: 20px; color: #6b7280; font-size: 14px;">
      <p>This is an automated notification from Coshikowa Agency</p>
      <p style="font-size: 12px; margin-top: 10px;">If you did not expect this email, please contact support immediately.</p>
    </div>
  </body>
</html>`,
		typeLabel(p.PaymentType),
		p.AmountKES,
		methodLabel(method),
		email,
		p.ID,
		proofURL,
		proofURL,
		approvalURL,
	)
}
