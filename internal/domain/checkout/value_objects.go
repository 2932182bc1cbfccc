package checkout

import (
	"strings"

	"storefront-api/internal/pkg/errs"
)

// CustomerInfo is captured at checkout only and snapshotted into the
// receipt; it is not persisted anywhere else.
type CustomerInfo struct {
	name  string
	email string
}

func NewCustomerInfo(name, email string) (CustomerInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CustomerInfo{}, errs.Wrap(errs.ErrInvalidCustomerInfo, "name is required")
	}
	if !strings.Contains(email, "@") {
		return CustomerInfo{}, errs.Wrap(errs.ErrInvalidCustomerInfo, "email must contain @")
	}
	return CustomerInfo{name: name, email: email}, nil
}

func (ci CustomerInfo) Name() string {
	return ci.name
}

func (ci CustomerInfo) Email() string {
	return ci.email
}
