package indirect_test

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Twon/indirect-value/indirect"
)

// accountState is the hidden implementation type: only this file knows its
// layout. Its fields are immutable value types (uuid arrays, decimals that
// return new values from every operation), so the default member-wise copy
// policy is already a deep copy.
type accountState struct {
	id      uuid.UUID
	holder  string
	balance decimal.Decimal
}

// Account is the visible half. The wrapper member supplies copy, move, and
// disposal semantics for the hidden state without exposing it.
type Account struct {
	state indirect.Value[accountState]
}

func NewAccount(holder string, opening decimal.Decimal) *Account {
	account := &Account{}
	account.state = indirect.New(accountState{
		id:      uuid.New(),
		holder:  holder,
		balance: opening,
	})

	return account
}

func (a *Account) Holder() string { return a.state.Get().holder }

func (a *Account) Balance() decimal.Decimal { return a.state.Get().balance }

func (a *Account) Deposit(amount decimal.Decimal) {
	state := a.state.Get()
	state.balance = state.balance.Add(amount)
}

// Clone returns an independent account sharing the original's identity.
func (a *Account) Clone() (*Account, error) {
	dup, err := a.state.Clone()
	if err != nil {
		return nil, err
	}

	account := &Account{}
	account.state.MoveFrom(&dup)

	return account, nil
}

func (a *Account) SameIdentity(other *Account) bool {
	return a.state.Get().id == other.state.Get().id
}

func Example_hiddenImplementation() {
	account := NewAccount("robin", decimal.NewFromInt(100))

	backup, err := account.Clone()
	if err != nil {
		panic(err)
	}

	account.Deposit(decimal.NewFromFloat(50.25))

	fmt.Println(account.Holder())
	fmt.Println(account.Balance())
	fmt.Println(backup.Balance())
	fmt.Println(account.SameIdentity(backup))

	// Output:
	// robin
	// 150.25
	// 100
	// true
}
