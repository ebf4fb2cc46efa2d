package quiz

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/quizsession"
)

var ErrAttemptNotFound = errors.New("quiz attempt not found")

// Uma tentativa abandonada é descartada depois deste prazo sem interação.
const attemptTTL = 2 * time.Hour

// Attempt amarra uma sessão de quiz em andamento ao usuário dono dela.
// A sessão em si nunca é persistida; apenas o resumo final vai ao banco.
type Attempt struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Session   *quizsession.Session
	touchedAt time.Time
}

// AttemptStore guarda as tentativas em andamento, uma por ID, com expiração
// por inatividade. O acesso é serializado porque handlers HTTP concorrentes
// compartilham o mapa; cada sessão continua tendo um único dono lógico.
type AttemptStore struct {
	mu       sync.Mutex
	attempts map[uuid.UUID]*Attempt
	ttl      time.Duration
	now      func() time.Time
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{
		attempts: make(map[uuid.UUID]*Attempt),
		ttl:      attemptTTL,
		now:      time.Now,
	}
}

func (st *AttemptStore) Put(userID uuid.UUID, session *quizsession.Session) *Attempt {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sweepLocked()

	a := &Attempt{
		ID:        uuid.New(),
		UserID:    userID,
		Session:   session,
		touchedAt: st.now(),
	}
	st.attempts[a.ID] = a
	return a
}

// Get devolve a tentativa se ela existir, não tiver expirado e pertencer ao
// usuário informado. Tentativa de outro usuário é indistinguível de
// inexistente.
func (st *AttemptStore) Get(id, userID uuid.UUID) (*Attempt, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	a, ok := st.attempts[id]
	if !ok || a.UserID != userID {
		return nil, ErrAttemptNotFound
	}
	if st.now().Sub(a.touchedAt) > st.ttl {
		delete(st.attempts, id)
		return nil, ErrAttemptNotFound
	}

	a.touchedAt = st.now()
	return a, nil
}

func (st *AttemptStore) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.attempts, id)
}

func (st *AttemptStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.attempts)
}

func (st *AttemptStore) sweepLocked() {
	cutoff := st.now().Add(-st.ttl)
	for id, a := range st.attempts {
		if a.touchedAt.Before(cutoff) {
			delete(st.attempts, id)
		}
	}
}
