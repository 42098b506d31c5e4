package customer

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Upsert(c Customer) error {
	return s.repo.Upsert(c)
}

func (s *Service) GetByPhone(phone string) (Customer, error) {
	return s.repo.GetByPhone(phone)
}

func (s *Service) List() []Customer {
	return s.repo.List()
}

func (s *Service) Count() (int, error) {
	return s.repo.Count()
}

// Prefill returns the stored record for an exactly full-length phone key.
// Any other length, and any lookup miss, yields an empty customer — the
// checkout form simply clears its fields, this is never an error.
func (s *Service) Prefill(phone string) Customer {
	if len(phone) != PhoneLength {
		return Customer{}
	}
	c, err := s.repo.GetByPhone(phone)
	if err != nil {
		return Customer{}
	}
	return c
}
