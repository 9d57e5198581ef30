package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Sulasulait/coshikowa-agency.com/config"
	"github.com/Sulasulait/coshikowa-agency.com/database"
	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/outbox"
	paymentdomain "github.com/Sulasulait/coshikowa-agency.com/internal/domain/payments"
	"github.com/Sulasulait/coshikowa-agency.com/internal/mailer"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SendAll delivers from concurrent goroutines, so the recorder locks.
type recorderSender struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (r *recorderSender) Send(m mailer.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, m)
	return "msg-id", nil
}

func (r *recorderSender) all() []mailer.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mailer.Message(nil), r.sent...)
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func setup(t *testing.T) *recorderSender {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	config.LoadPricing()
	config.ADMIN_EMAIL = "info@coshikowaagency.com"
	config.MAIL_FROM = "Coshikowa Agency <noreply@coshikowaagency.com>"
	config.APP_URL = "http://localhost:8080"
	config.UPLOAD_DIR = t.TempDir()
	config.UPLOAD_BASE_URL = "http://localhost:8080/uploads"

	rec := &recorderSender{}
	mailer.Default = rec
	return rec
}

func router() *gin.Engine {
	r := gin.New()
	r.POST("/payments", CreatePayment)
	r.POST("/payments/:id/proof", SubmitProof)
	r.POST("/send-payment-proof-notification", SendProofNotification)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentUsesConfiguredPrice(t *testing.T) {
	setup(t)
	r := router()

	w := postJSON(r, "/payments", map[string]any{
		"payment_type": "job_application",
		// client-supplied amounts must be ignored
		"amount_kes": 1,
		"form_data": map[string]any{
			"fullName": "Jane Doe",
			"email":    "jane@example.com",
			"phone":    "+254700000001",
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Payment   paymentdomain.Payment `json:"payment"`
		AmountUGX int64                 `json:"amount_ugx"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2000.0, resp.Payment.AmountKES)
	assert.Equal(t, 15.60, resp.Payment.AmountUSD)
	assert.Equal(t, int64(57720), resp.AmountUGX)
	assert.Equal(t, paymentdomain.StatusPending, resp.Payment.PaymentStatus)
	assert.Equal(t, "jane@example.com", resp.Payment.Email)

	var stored paymentdomain.Payment
	require.NoError(t, database.DB.First(&stored, "id = ?", resp.Payment.ID).Error)
	assert.Equal(t, 2000.0, stored.AmountKES)
}

func TestCreatePaymentValidation(t *testing.T) {
	setup(t)
	r := router()

	w := postJSON(r, "/payments", map[string]any{
		"payment_type": "consulting",
		"form_data":    map[string]any{"email": "jane@example.com"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/payments", map[string]any{
		"payment_type": "job_application",
		"form_data":    map[string]any{"fullName": "Jane Doe"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "form_data.email")

	var count int64
	database.DB.Model(&paymentdomain.Payment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func seedPayment(t *testing.T, status string) *paymentdomain.Payment {
	t.Helper()
	form, _ := json.Marshal(map[string]any{
		"fullName": "Jane Doe", "email": "jane@example.com",
		"phone": "+254700000001", "desiredPosition": "Housekeeper",
	})
	p := paymentdomain.Payment{
		PaymentType:   paymentdomain.TypeJobApplication,
		AmountKES:     2000,
		AmountUSD:     15.60,
		PaymentStatus: status,
		FormData:      form,
		Email:         "jane@example.com",
	}
	require.NoError(t, database.DB.Create(&p).Error)
	return &p
}

func multipartProof(t *testing.T, method, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("payment_method", method))
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestSubmitProofMovesPaymentToPendingReview(t *testing.T) {
	setup(t)
	r := router()
	p := seedPayment(t, paymentdomain.StatusPending)

	body, contentType := multipartProof(t, "mpesa", "receipt.png", pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/payments/"+p.ID+"/proof", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pending_review")

	var updated paymentdomain.Payment
	require.NoError(t, database.DB.First(&updated, "id = ?", p.ID).Error)
	assert.Equal(t, paymentdomain.StatusPendingReview, updated.PaymentStatus)
	assert.Equal(t, paymentdomain.MethodMpesa, updated.PaymentMethod)
	require.NotNil(t, updated.PaymentProofURL)
	assert.Contains(t, *updated.PaymentProofURL, "/payment-proofs/"+p.ID+"-")

	var proofs []paymentdomain.PaymentProof
	require.NoError(t, database.DB.Where("payment_id = ?", p.ID).Find(&proofs).Error)
	require.Len(t, proofs, 1)
	assert.Equal(t, "receipt.png", proofs[0].FileName)
}

func TestSubmitProofRejectsWrongFileType(t *testing.T) {
	setup(t)
	r := router()
	p := seedPayment(t, paymentdomain.StatusPending)

	body, contentType := multipartProof(t, "mpesa", "receipt.txt", []byte("just some text, not a receipt"))
	req := httptest.NewRequest(http.MethodPost, "/payments/"+p.ID+"/proof", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JPG, PNG, WEBP")

	var count int64
	database.DB.Model(&paymentdomain.PaymentProof{}).Count(&count)
	assert.Equal(t, int64(0), count)

	var unchanged paymentdomain.Payment
	require.NoError(t, database.DB.First(&unchanged, "id = ?", p.ID).Error)
	assert.Equal(t, paymentdomain.StatusPending, unchanged.PaymentStatus)
}

func TestSubmitProofRejectsOversizedFile(t *testing.T) {
	setup(t)
	r := router()
	p := seedPayment(t, paymentdomain.StatusPending)

	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, MaxProofSize)...)
	body, contentType := multipartProof(t, "bank_transfer", "huge.png", big)
	req := httptest.NewRequest(http.MethodPost, "/payments/"+p.ID+"/proof", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "5MB")
}

func TestSubmitProofOnReviewedPayment(t *testing.T) {
	setup(t)
	r := router()
	p := seedPayment(t, paymentdomain.StatusCompleted)

	body, contentType := multipartProof(t, "mpesa", "receipt.png", pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/payments/"+p.ID+"/proof", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitProofUnknownMethod(t *testing.T) {
	setup(t)
	r := router()
	p := seedPayment(t, paymentdomain.StatusPending)

	body, contentType := multipartProof(t, "paypal", "receipt.png", pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/payments/"+p.ID+"/proof", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "payment_method")
}

func TestNotifyProofSubmittedMintsTokenAndEmailsStaff(t *testing.T) {
	rec := setup(t)
	p := seedPayment(t, paymentdomain.StatusPendingReview)

	err := NotifyProofSubmitted(database.DB, p.ID, "http://localhost:8080/uploads/payment-proofs/x.png", "mpesa", p.Email)
	require.NoError(t, err)

	var updated paymentdomain.Payment
	require.NoError(t, database.DB.First(&updated, "id = ?", p.ID).Error)
	require.NotNil(t, updated.ApprovalToken)
	assert.NotEmpty(t, *updated.ApprovalToken)

	sent := rec.all()
	require.Len(t, sent, 1)
	msg := sent[0]
	assert.Equal(t, "info@coshikowaagency.com", msg.To)
	assert.Contains(t, msg.Subject, "KES 2000")
	assert.Contains(t, msg.HTML, "/approve-payment?token="+*updated.ApprovalToken)

	var tasks []outbox.EmailTask
	require.NoError(t, database.DB.Where("kind = ?", "staff_review").Find(&tasks).Error)
	require.Len(t, tasks, 1)
	assert.Equal(t, outbox.TaskSent, tasks[0].Status)
}

func TestSendProofNotificationRequiresPaymentID(t *testing.T) {
	setup(t)
	r := router()

	w := postJSON(r, "/send-payment-proof-notification", map[string]any{
		"paymentProofUrl": "http://example.com/x.png",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "paymentId"))
}
