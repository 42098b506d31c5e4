package admin

import "golang.org/x/crypto/bcrypt"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Authenticate(email, password string) (Admin, error) {
	a, err := s.repo.GetByEmail(email)
	if err != nil {
		return Admin{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return Admin{}, ErrInvalidCredentials
	}
	return a, nil
}

// EnsureAccount creates the admin account when it does not exist yet, so a
// fresh deployment can sign in with the credentials from the environment.
func (s *Service) EnsureAccount(email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil
	} else if err != ErrNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.repo.Create(Admin{Email: email, Password: string(hashed)})
	return err
}
