package editform

import (
	"context"
	"errors"
	"time"

	editformerrors "github.com/HadirBos/hr-admin-gateway/internal/editform/errors"
	"github.com/HadirBos/hr-admin-gateway/internal/shared/contextutil"
	"github.com/HadirBos/hr-admin-gateway/internal/user"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=editform_service.go -destination=mock/editform_service_mock.go -package=mock

type Service interface {
	Create(ctx context.Context, userID string) (SessionResponse, error)
	Load(ctx context.Context, sessionID, token string) (SessionResponse, error)
	Get(ctx context.Context, sessionID string) (SessionResponse, error)
	SetField(ctx context.Context, sessionID, field string, value any) (SessionResponse, error)
	Submit(ctx context.Context, sessionID, token string) (SubmitResponse, error)
	Cancel(ctx context.Context, sessionID string) error
	InvalidateUser(ctx context.Context, userID string) (int, error)
}

type service struct {
	store  Store
	users  user.Client
	logger *zap.Logger
}

func NewService(store Store, users user.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("editform.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("editform.service")
	}
	return &service{store: store, users: users, logger: l}
}

func (s *service) Create(ctx context.Context, userID string) (SessionResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	if userID == "" {
		return SessionResponse{}, editformerrors.ErrInvalidUserID
	}

	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		State:     StateUninitialized,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Save(ctx, sess); err != nil {
		l.Error("save new session failed", zap.String("user_id", userID), zap.Error(err))
		return SessionResponse{}, err
	}

	l.Debug("edit session created",
		zap.String("session_id", sess.ID),
		zap.String("user_id", userID),
	)
	return mapToResponse(sess), nil
}

// Load mengerjakan fetch baseline paling banyak satu kali per session.
// Panggilan ulang pada session yang sudah lewat state uninitialized
// mengembalikan snapshot saat ini tanpa network fetch.
func (s *service) Load(ctx context.Context, sessionID, token string) (SessionResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return SessionResponse{}, err
	}

	if sess.State != StateUninitialized {
		return mapToResponse(sess), nil
	}

	sess.State = StateLoading
	sess.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, sess); err != nil {
		return SessionResponse{}, err
	}

	data, fetchErr := s.users.GetByID(ctx, sess.UserID, token)

	// Session bisa saja dihapus selagi fetch berjalan (invalidasi event
	// atau cancel); hasil fetch untuk session yang sudah mati dibuang.
	sess, err = s.store.Get(ctx, sessionID)
	if err != nil {
		l.Warn("session gone mid-load, discarding result", zap.String("session_id", sessionID))
		return SessionResponse{}, err
	}

	if fetchErr != nil {
		sess.State = StateFailed
		sess.LoadError = fetchErr.Error()
		sess.UpdatedAt = time.Now().UTC()
		if err := s.store.Save(ctx, sess); err != nil {
			return SessionResponse{}, err
		}
		l.Warn("load baseline failed",
			zap.String("session_id", sessionID),
			zap.String("user_id", sess.UserID),
			zap.Error(fetchErr),
		)
		return mapToResponse(sess), nil
	}

	sess.Seed(data)
	sess.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, sess); err != nil {
		return SessionResponse{}, err
	}

	l.Info("edit session loaded",
		zap.String("session_id", sessionID),
		zap.String("user_id", sess.UserID),
	)
	return mapToResponse(sess), nil
}

func (s *service) Get(ctx context.Context, sessionID string) (SessionResponse, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	return mapToResponse(sess), nil
}

// SetField mengganti satu field di salinan editable. Tidak ada validasi
// nilai di layer ini; constraint field diurus user service dan muncul
// sebagai submit error.
func (s *service) SetField(ctx context.Context, sessionID, field string, value any) (SessionResponse, error) {
	if !IsEditableField(field) {
		return SessionResponse{}, editformerrors.ErrUnknownField
	}
	if !isScalar(value) {
		return SessionResponse{}, editformerrors.ErrNonScalarValue
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	if sess.State != StateReady {
		return SessionResponse{}, editformerrors.ErrSessionNotReady
	}

	sess.Fields[field] = value
	sess.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, sess); err != nil {
		return SessionResponse{}, err
	}
	return mapToResponse(sess), nil
}

func (s *service) Submit(ctx context.Context, sessionID, token string) (SubmitResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return SubmitResponse{}, err
	}
	if sess.State != StateReady {
		return SubmitResponse{}, editformerrors.ErrSessionNotReady
	}
	if sess.Submitting {
		return SubmitResponse{}, editformerrors.ErrSubmitInFlight
	}

	sess.Submitting = true
	sess.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, sess); err != nil {
		return SubmitResponse{}, err
	}

	patch := sess.ComputePatch()
	l.Debug("submitting patch",
		zap.String("session_id", sessionID),
		zap.String("user_id", sess.UserID),
		zap.Int("fields", len(patch)),
	)

	// Patch kosong tetap dikirim; user service memperlakukannya no-op.
	_, updateErr := s.users.Update(ctx, sess.UserID, patch, token)
	if updateErr != nil {
		// State form dipertahankan supaya operator bisa retry tanpa
		// mengetik ulang.
		if sess, err = s.store.Get(ctx, sessionID); err == nil {
			sess.Submitting = false
			sess.UpdatedAt = time.Now().UTC()
			_ = s.store.Save(ctx, sess)
		}
		l.Warn("submit failed",
			zap.String("session_id", sessionID),
			zap.Error(updateErr),
		)
		return SubmitResponse{}, updateErr
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		l.Error("delete session after submit failed", zap.String("session_id", sessionID), zap.Error(err))
	}

	l.Info("edit session submitted",
		zap.String("session_id", sessionID),
		zap.String("user_id", sess.UserID),
		zap.Int("fields", len(patch)),
	)
	return SubmitResponse{Patch: patch, Updated: true}, nil
}

func (s *service) Cancel(ctx context.Context, sessionID string) error {
	if _, err := s.store.Get(ctx, sessionID); err != nil {
		if errors.Is(err, editformerrors.ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return s.store.Delete(ctx, sessionID)
}

func (s *service) InvalidateUser(ctx context.Context, userID string) (int, error) {
	deleted, err := s.store.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		contextutil.GetLogger(ctx, s.logger).Info("edit sessions invalidated",
			zap.String("user_id", userID),
			zap.Int("count", deleted),
		)
	}
	return deleted, nil
}

// isScalar membatasi nilai field ke representasi yang comparable supaya
// diff `!=` di ComputePatch tidak pernah membandingkan tipe non-comparable.
func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, float64, int, int64:
		return true
	default:
		return false
	}
}
