package payload

import "time"

// requiredClaims must all be present for a payload to validate.
var requiredClaims = []string{
	ClaimIssuer,
	ClaimIssuedAt,
	ClaimNotBefore,
	ClaimExpiry,
	ClaimSubject,
	ClaimTokenID,
}

// Validator checks claim-set integrity: required claims present, expiry and
// not-before honored against the injected clock.
type Validator interface {
	// Validate fails with ErrTokenExpired when now >= exp,
	// ErrTokenNotYetValid when now < nbf, or InvalidClaimError when a
	// required claim is missing.
	Validate(p *Payload) error
	// ValidateForRefresh tolerates exp in the past within the refresh grace
	// window, rejecting once grace has elapsed. It must never be used for
	// regular request validation.
	ValidateForRefresh(p *Payload) error
}

type validatorImpl struct {
	grace time.Duration
	clock func() time.Time
}

// NewValidator builds a validator with the given refresh grace window.
// A nil clock defaults to time.Now.
func NewValidator(grace time.Duration, clock func() time.Time) Validator {
	if clock == nil {
		clock = time.Now
	}
	return &validatorImpl{grace: grace, clock: clock}
}

func (v *validatorImpl) Validate(p *Payload) error {
	return v.validate(p, 0)
}

func (v *validatorImpl) ValidateForRefresh(p *Payload) error {
	return v.validate(p, v.grace)
}

func (v *validatorImpl) validate(p *Payload, grace time.Duration) error {
	for _, name := range requiredClaims {
		if !p.Has(name) {
			return &InvalidClaimError{Claim: name, Reason: "required claim missing"}
		}
	}

	now := v.clock().Unix()

	nbf, err := p.Int64(ClaimNotBefore)
	if err != nil {
		return err
	}
	if now < nbf {
		return ErrTokenNotYetValid
	}

	exp, err := p.Int64(ClaimExpiry)
	if err != nil {
		return err
	}
	if now >= exp+int64(grace.Seconds()) {
		return ErrTokenExpired
	}

	return nil
}
