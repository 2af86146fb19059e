package service

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/money"
	"github.com/hance08/teller/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AccountHandle identifies an account by its position in the owner's list.
type AccountHandle struct {
	Index int
	Name  string
	Type  bank.AccountType
}

func (s *Service) CreateAccount(sess *Session, name string, typ bank.AccountType) (AccountHandle, error) {
	user, auth, err := s.authorize(sess)
	if err != nil {
		return AccountHandle{}, s.refused("create account", sess, err)
	}

	if err := validation.ValidateAccountName(name); err != nil {
		return AccountHandle{}, fmt.Errorf("%w: %v", bank.ErrInvalidInput, err)
	}
	name = strings.TrimSpace(name)

	acc, err := user.CreateAccount(auth, name, typ)
	if err != nil {
		return AccountHandle{}, s.refused("create account", sess, err)
	}

	s.log.WithFields(logrus.Fields{
		"user":    user.Username(),
		"account": acc.Name(),
		"type":    acc.Type().String(),
	}).Info("Account created")

	return AccountHandle{Index: user.IndexOf(acc), Name: acc.Name(), Type: acc.Type()}, nil
}

// Deposit converts dollars to cents and credits the account. It returns the
// signed amount posted.
func (s *Service) Deposit(sess *Session, index int, dollars decimal.Decimal) (money.Money, error) {
	return s.post(sess, index, dollars, "deposit", (*bank.User).Deposit)
}

// Withdraw returns the posted amount, which is negative.
func (s *Service) Withdraw(sess *Session, index int, dollars decimal.Decimal) (money.Money, error) {
	return s.post(sess, index, dollars, "withdraw", (*bank.User).Withdraw)
}

type postFunc func(*bank.User, bank.Authorization, int, money.Money) (ledger.Transaction, error)

func (s *Service) post(sess *Session, index int, dollars decimal.Decimal, op string, fn postFunc) (money.Money, error) {
	user, auth, err := s.authorize(sess)
	if err != nil {
		return 0, s.refused(op, sess, err)
	}

	amount, err := money.FromDecimal(dollars)
	if err != nil {
		return 0, s.refused(op, sess, err)
	}

	tx, err := fn(user, auth, index, amount)
	if err != nil {
		return 0, s.refused(op, sess, err)
	}

	fields := logrus.Fields{
		"user":    user.Username(),
		"account": index + 1,
		"amount":  tx.Amount.String(),
		"tx_id":   tx.ID,
	}
	if bal, err := user.Balance(auth, index); err == nil {
		fields["balance"] = bal.String()
	}
	s.log.WithFields(fields).Info("Transaction posted")

	return tx.Amount, nil
}

func (s *Service) Balance(sess *Session, index int) (money.Money, error) {
	user, auth, err := s.authorize(sess)
	if err != nil {
		return 0, s.refused("balance", sess, err)
	}
	bal, err := user.Balance(auth, index)
	if err != nil {
		return 0, s.refused("balance", sess, err)
	}
	return bal, nil
}

func (s *Service) History(sess *Session, index int) ([]ledger.Transaction, error) {
	user, auth, err := s.authorize(sess)
	if err != nil {
		return nil, s.refused("history", sess, err)
	}
	txs, err := user.History(auth, index)
	if err != nil {
		return nil, s.refused("history", sess, err)
	}
	return txs, nil
}

func (s *Service) FormatHistory(sess *Session, index int) (string, error) {
	user, auth, err := s.authorize(sess)
	if err != nil {
		return "", s.refused("history", sess, err)
	}
	out, err := user.FormatHistory(auth, index)
	if err != nil {
		return "", s.refused("history", sess, err)
	}
	return out, nil
}

func (s *Service) Accounts(sess *Session) ([]bank.AccountInfo, error) {
	user, auth, err := s.authorize(sess)
	if err != nil {
		return nil, s.refused("list accounts", sess, err)
	}
	infos, err := user.Accounts(auth)
	if err != nil {
		return nil, s.refused("list accounts", sess, err)
	}
	return infos, nil
}

func (s *Service) FormatAccounts(sess *Session) (string, error) {
	user, auth, err := s.authorize(sess)
	if err != nil {
		return "", s.refused("list accounts", sess, err)
	}
	out, err := user.FormatAccounts(auth)
	if err != nil {
		return "", s.refused("list accounts", sess, err)
	}
	return out, nil
}

// refused logs a rejected operation and returns err unchanged.
func (s *Service) refused(op string, sess *Session, err error) error {
	fields := logrus.Fields{
		"op":    op,
		"error": err.Error(),
	}
	if sess != nil {
		fields["user"] = sess.username
	}
	s.log.WithFields(fields).Warn("Operation refused")
	return err
}
