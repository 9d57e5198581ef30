package approval

import (
	"fmt"
	"net/url"

	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/payments"
)

// redirectPage is the minimal shell used for the failure and replay exits:
// a short message and an immediate script redirect to the frontend.
func redirectPage(title, message, target string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <title>%s</title>
  </head>
  <body>
    <p>%s</p>
    <script>
      window.location.href = '%s';
    </script>
  </body>
</html>`, title, message, target)
}

func errorPage(frontendURL, reason string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <title>Error</title>
  </head>
  <body>
    <p>An error occurred. Please contact support at info@coshikowaagency.com</p>
    <script>
      setTimeout(function() {
        window.location.href = '%s/?error=%s';
      }, 3000);
    </script>
  </body>
</html>`, frontendURL, url.QueryEscape(reason))
}

func successPage(frontendURL string, p *payments.Payment) string {
	redirect := fmt.Sprintf("%s/?approved=true&type=%s&amount=%s",
		frontendURL,
		url.QueryEscape(p.PaymentType),
		url.QueryEscape(fmt.Sprintf("%.0f", p.AmountKES)),
	)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <title>Payment Approved</title>
    <style>
      body {
        font-family: Arial, sans-serif;
        display: flex;
        align-items: center;
        justify-content: center;
        min-height: 100vh;
        margin: 0;
        background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
      }
      .container {
        background: white;
        padding: 40px;
        border-radius: 20px;
        text-align: center;
        box-shadow: 0 20px 60px rgba(0,0,0,0.3);
        max-width: 500px;
      }
      h1 { color: #059669; margin: 20px 0; }
      p { color: #6b7280; line-height: 1.6; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>Payment Approved!</h1>
      <p>The payment has been approved successfully.</p>
      <p>The application has been submitted to info@coshikowaagency.com</p>
      <p>The applicant has also been notified via email.</p>
      <p style="margin-top: 30px; font-size: 14px;">Redirecting to homepage...</p>
    </div>
    <script>
      setTimeout(function() {
        window.location.href = '%s';
      }, 3000);
    </script>
  </body>
</html>`, redirect)
}
