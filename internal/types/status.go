package types

// SubscriptionStatus mirrors the status values reported in the raw
// subscription export. Values outside the enumerated set are preserved
// verbatim and count toward the inactive complement.
type SubscriptionStatus string

const (
	SubscriptionStatusActive            SubscriptionStatus = "active"
	SubscriptionStatusTrialing          SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue           SubscriptionStatus = "past_due"
	SubscriptionStatusPaused            SubscriptionStatus = "paused"
	SubscriptionStatusIncompleteExpired SubscriptionStatus = "incomplete_expired"
)

// PaymentStatus mirrors the status values of the payment attempt export.
type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)
