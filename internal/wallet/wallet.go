// Package wallet supplies the acting identity. The address is taken as
// ground truth; nothing here authenticates it.
package wallet

// Wallet holds the configured fallback address used when a request
// carries no identity of its own.
type Wallet struct {
	address string
}

func New(address string) *Wallet {
	return &Wallet{address: address}
}

// CurrentActor returns the configured address, possibly empty.
func (w *Wallet) CurrentActor() string {
	return w.address
}
