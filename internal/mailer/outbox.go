package mailer

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Sulasulait/coshikowa-agency.com/internal/domain/outbox"
	"gorm.io/gorm"
)

// Enqueue records an email task before anything is sent, so a lost send is a
// row in the database rather than a vanished goroutine.
func Enqueue(db *gorm.DB, kind string, m Message) (*outbox.EmailTask, error) {
	task := outbox.EmailTask{
		To:          m.To,
		Subject:     m.Subject,
		HTML:        m.HTML,
		Kind:        kind,
		Status:      outbox.TaskPending,
		MaxAttempts: outbox.DefaultMaxAttempts,
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Attempt tries to deliver one task exactly once and records the outcome.
// A task that exhausts its attempts moves to the failed (dead-letter) state.
func Attempt(db *gorm.DB, task *outbox.EmailTask, from string) error {
	// Claim the attempt first: the inline first send and a dispatcher tick
	// can hold the same task, and only one of them may deliver it.
	claim := db.Model(&outbox.EmailTask{}).
		Where("id = ? AND status = ? AND attempts = ?", task.ID, outbox.TaskPending, task.Attempts).
		Update("attempts", task.Attempts+1)
	if claim.Error != nil {
		return fmt.Errorf("failed to claim email attempt: %w", claim.Error)
	}
	if claim.RowsAffected == 0 {
		return nil
	}
	task.Attempts++

	_, err := Default.Send(Message{
		From:    from,
		To:      task.To,
		Subject: task.Subject,
		HTML:    task.HTML,
	})

	now := time.Now()
	updates := map[string]interface{}{}

	if err == nil {
		task.Status = outbox.TaskSent
		updates["status"] = outbox.TaskSent
		updates["sent_at"] = now
		updates["last_error"] = nil
		updates["next_attempt_at"] = nil
	} else {
		errText := err.Error()
		updates["last_error"] = errText
		task.LastError = &errText
		if task.Attempts >= task.MaxAttempts {
			task.Status = outbox.TaskFailed
			updates["status"] = outbox.TaskFailed
			updates["next_attempt_at"] = nil
		} else {
			// doubling delay between retries
			next := now.Add(time.Duration(1<<task.Attempts) * time.Minute)
			task.NextAttemptAt = &next
			updates["next_attempt_at"] = next
		}
	}

	if dbErr := db.Model(&outbox.EmailTask{}).Where("id = ?", task.ID).Updates(updates).Error; dbErr != nil {
		return fmt.Errorf("failed to record email attempt: %w", dbErr)
	}
	return err
}

// SendAll enqueues every message and fires the first delivery attempt for
// each concurrently, waiting for all of them to settle. Individual failures
// are logged and left to the dispatcher to retry; the caller never fails
// because an email did.
func SendAll(db *gorm.DB, from string, kinds []string, msgs []Message) {
	var wg sync.WaitGroup
	for i := range msgs {
		task, err := Enqueue(db, kinds[i], msgs[i])
		if err != nil {
			log.Println("failed to enqueue email:", err)
			continue
		}
		wg.Add(1)
		go func(t *outbox.EmailTask) {
			defer wg.Done()
			if err := Attempt(db, t, from); err != nil {
				log.Printf("email send failed (kind=%s to=%s): %v", t.Kind, t.To, err)
			}
		}(task)
	}
	wg.Wait()
}

// Dispatch delivers every pending task that is due for another attempt.
func Dispatch(db *gorm.DB, from string) {
	var due []outbox.EmailTask
	now := time.Now()
	err := db.Where("status = ? AND (next_attempt_at IS NULL OR next_attempt_at <= ?)", outbox.TaskPending, now).
		Order("created_at").
		Limit(50).
		Find(&due).Error
	if err != nil {
		log.Println("outbox dispatch query failed:", err)
		return
	}

	for i := range due {
		if err := Attempt(db, &due[i], from); err != nil {
			log.Printf("outbox retry failed (id=%s attempts=%d): %v", due[i].ID, due[i].Attempts, err)
		}
	}
}

// RunDispatcher retries pending emails in the background until the process
// exits. Interval is coarse; nothing here is latency sensitive.
func RunDispatcher(db *gorm.DB, from string, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			Dispatch(db, from)
		}
	}()
}

// Requeue puts a dead-lettered task back in the pending queue with a fresh
// attempt budget.
func Requeue(db *gorm.DB, taskID string) error {
	res := db.Model(&outbox.EmailTask{}).
		Where("id = ? AND status = ?", taskID, outbox.TaskFailed).
		Updates(map[string]interface{}{
			"status":          outbox.TaskPending,
			"attempts":        0,
			"last_error":      nil,
			"next_attempt_at": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
