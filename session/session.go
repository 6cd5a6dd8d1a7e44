package session

// Identity is the minimal principal record kept client-side.
type Identity struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type sessionState struct {
	Token     string   `json:"token"`
	Principal Identity `json:"principal"`
}

// UserSession tracks the signed-in user. It is deliberately a different
// type from RestaurantSession: the two principal kinds carry ids from
// disjoint spaces and must never share a store.
type UserSession struct {
	store *Store
	state sessionState
}

func NewUserSession(store *Store) *UserSession {
	return &UserSession{store: store}
}

// Load restores a previously persisted session, if any.
func (s *UserSession) Load() error {
	_, err := s.store.Load(&s.state)
	return err
}

// LogIn records the principal and token and persists them.
func (s *UserSession) LogIn(principal Identity, token string) error {
	s.state = sessionState{Token: token, Principal: principal}
	return s.store.Persist(&s.state)
}

// LogOut forgets the session and clears the persisted copy.
func (s *UserSession) LogOut() error {
	s.state = sessionState{}
	return s.store.Clear()
}

func (s *UserSession) Active() bool {
	return s.state.Token != ""
}

func (s *UserSession) Token() string {
	return s.state.Token
}

func (s *UserSession) Principal() Identity {
	return s.state.Principal
}

// RestaurantSession tracks the signed-in restaurant.
type RestaurantSession struct {
	store *Store
	state sessionState
}

func NewRestaurantSession(store *Store) *RestaurantSession {
	return &RestaurantSession{store: store}
}

func (s *RestaurantSession) Load() error {
	_, err := s.store.Load(&s.state)
	return err
}

func (s *RestaurantSession) LogIn(principal Identity, token string) error {
	s.state = sessionState{Token: token, Principal: principal}
	return s.store.Persist(&s.state)
}

func (s *RestaurantSession) LogOut() error {
	s.state = sessionState{}
	return s.store.Clear()
}

func (s *RestaurantSession) Active() bool {
	return s.state.Token != ""
}

func (s *RestaurantSession) Token() string {
	return s.state.Token
}

func (s *RestaurantSession) Principal() Identity {
	return s.state.Principal
}
