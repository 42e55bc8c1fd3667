package usecasecontract

// IValidator exposes input format checks to usecases.
type IValidator interface {
	ValidateEmail(email string) error
}
