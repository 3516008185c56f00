package freeze_subscription

import "fmt"

func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() || req.Until.IsZero() {
		return fmt.Errorf("%w: freeze dates are required", ErrInvalidInput)
	}
	return nil
}
