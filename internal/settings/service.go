package settings

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get() (DeliverySetting, error) {
	return s.repo.Get()
}

func (s *Service) Set(setting DeliverySetting) error {
	return s.repo.Set(setting)
}

// FreeDelivery reports whether the global free-delivery flag is on. Read
// errors fall back to charging, which is the safe direction for the shop.
func (s *Service) FreeDelivery() bool {
	setting, err := s.repo.Get()
	if err != nil {
		return false
	}
	return setting.IsFreeDelivery
}
