// Package entitlement decides what a tenant's subscription state allows.
package entitlement

import (
	"cleanlyquote/internal/domain/entities"
	"encoding/json"
	"strconv"
)

// FreeQuoteLimit is the total number of quotes a non-subscribed tenant may own.
const FreeQuoteLimit = 3

const unlimitedLiteral = "unlimited"

// Remaining is either "unlimited" or a non-negative count. It marshals to the
// JSON string "unlimited" or to a number.
type Remaining struct {
	Unlimited bool
	Count     int
}

func Unlimited() Remaining { return Remaining{Unlimited: true} }

func Limited(n int) Remaining {
	if n < 0 {
		n = 0
	}
	return Remaining{Count: n}
}

func (r Remaining) String() string {
	if r.Unlimited {
		return unlimitedLiteral
	}
	return strconv.Itoa(r.Count)
}

func (r Remaining) MarshalJSON() ([]byte, error) {
	if r.Unlimited {
		return json.Marshal(unlimitedLiteral)
	}
	return json.Marshal(r.Count)
}

func (r *Remaining) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != unlimitedLiteral {
			return &json.UnsupportedValueError{Str: s}
		}
		*r = Unlimited()
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = Limited(n)
	return nil
}

// Decision is the outcome of a quote-creation entitlement check.
type Decision struct {
	Allowed   bool
	Remaining Remaining
}

// QuoteCreation evaluates whether a tenant with the given subscription status
// and existing quote count may create another quote.
func QuoteCreation(subscriptionStatus string, quoteCount int) Decision {
	if subscriptionStatus == entities.SubscriptionStatusActive {
		return Decision{Allowed: true, Remaining: Unlimited()}
	}
	return Decision{
		Allowed:   quoteCount < FreeQuoteLimit,
		Remaining: Limited(FreeQuoteLimit - quoteCount),
	}
}

// Feature names a capability reserved for paying tenants.
type Feature string

const FeatureTeam Feature = "team"

var featureNames = map[Feature]string{
	FeatureTeam: "Team management",
}

// Allows reports whether a tenant with the given subscription status may use
// feature. Every paid feature requires an active subscription.
func Allows(subscriptionStatus string, feature Feature) bool {
	_, known := featureNames[feature]
	return known && subscriptionStatus == entities.SubscriptionStatusActive
}

// Name is the label shown in upgrade prompts.
func (f Feature) Name() string {
	if n, ok := featureNames[f]; ok {
		return n
	}
	return string(f)
}
