package memory

import (
	"context"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
)

type usersRepo struct {
	s *Store
}

func (r *usersRepo) GetUserByID(_ context.Context, id string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) CreateUser(_ context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.ID]; ok {
		return store.ErrAlreadyExists
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return store.ErrAlreadyExists
		}
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *usersRepo) UpdateProfile(_ context.Context, userID, name, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	for _, existing := range r.s.users {
		if existing.ID != userID && existing.Email == email {
			return store.ErrAlreadyExists
		}
	}
	u.Name = name
	u.Email = email
	u.UpdatedAt = time.Now().UTC()
	r.s.users[userID] = u
	return nil
}

func (r *usersRepo) UpdatePasswordHash(_ context.Context, userID, newHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.PasswordHash = newHash
	u.UpdatedAt = time.Now().UTC()
	r.s.users[userID] = u
	return nil
}

func (r *usersRepo) EnableTwoFactor(_ context.Context, userID, secret string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.TwoFactorSecret = &secret
	u.TwoFactorEnabled = true
	u.UpdatedAt = time.Now().UTC()
	r.s.users[userID] = u
	return nil
}

func (r *usersRepo) DisableTwoFactor(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.TwoFactorSecret = nil
	u.TwoFactorEnabled = false
	u.UpdatedAt = time.Now().UTC()
	r.s.users[userID] = u
	return nil
}

type sessionsRepo struct {
	s *Store
}

func (r *sessionsRepo) CreateSession(_ context.Context, sess domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.sessions[sess.TokenHash]; ok {
		return store.ErrAlreadyExists
	}
	r.s.sessions[sess.TokenHash] = sess
	return nil
}

func (r *sessionsRepo) GetSession(_ context.Context, tokenHash string) (domain.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sess, ok := r.s.sessions[tokenHash]
	if !ok || sess.Expired(time.Now().UTC()) {
		return domain.Session{}, store.ErrNotFound
	}
	return sess, nil
}

func (r *sessionsRepo) DeleteSession(_ context.Context, tokenHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.sessions, tokenHash)
	return nil
}

func (r *sessionsRepo) DeleteUserSessions(_ context.Context, userID, exceptTokenHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for hash, sess := range r.s.sessions {
		if sess.UserID == userID && hash != exceptTokenHash {
			delete(r.s.sessions, hash)
		}
	}
	return nil
}

func (r *sessionsRepo) DeleteExpiredSessions(_ context.Context, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for hash, sess := range r.s.sessions {
		if sess.Expired(now) {
			delete(r.s.sessions, hash)
		}
	}
	return nil
}

type passwordResetsRepo struct {
	s *Store
}

func (r *passwordResetsRepo) CreatePasswordReset(_ context.Context, pr domain.PasswordReset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.passwordResets[pr.TokenHash]; ok {
		return store.ErrAlreadyExists
	}
	r.s.passwordResets[pr.TokenHash] = pr
	return nil
}

func (r *passwordResetsRepo) GetPasswordReset(_ context.Context, tokenHash string) (domain.PasswordReset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	pr, ok := r.s.passwordResets[tokenHash]
	if !ok {
		return domain.PasswordReset{}, store.ErrNotFound
	}
	return pr, nil
}

func (r *passwordResetsRepo) MarkPasswordResetUsed(_ context.Context, id string, usedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for hash, pr := range r.s.passwordResets {
		if pr.ID == id {
			pr.UsedAt = &usedAt
			r.s.passwordResets[hash] = pr
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *passwordResetsRepo) DeleteExpiredPasswordResets(_ context.Context, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for hash, pr := range r.s.passwordResets {
		if pr.UsedAt != nil || !pr.ExpiresAt.After(now) {
			delete(r.s.passwordResets, hash)
		}
	}
	return nil
}
