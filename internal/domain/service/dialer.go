package service

import "context"

// Dialer asks the device to open a phone-call intent.
type Dialer interface {
	Dial(ctx context.Context, number string) error
}
