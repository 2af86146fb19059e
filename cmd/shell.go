package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

const (
	optCreateUser    = "Create new user"
	optLogin         = "Log in"
	optCreateAccount = "Create account"
	optDeposit       = "Deposit"
	optWithdraw      = "Withdraw"
	optHistory       = "View transaction record"
	optBalance       = "View balance"
	optListAccounts  = "List accounts"
	optLogout        = "Log out"
	optQuit          = "Quit"
)

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errNoUsers          = errors.New("no users. You must create a user before you can log in")
)

type shellRunner struct {
	svc     *service.Service
	prompt  Prompter
	session *service.Session
}

func newShellRunner(svc *service.Service, prompt Prompter) *shellRunner {
	return &shellRunner{svc: svc, prompt: prompt}
}

func (r *shellRunner) menu() []string {
	if r.session == nil {
		return []string{optCreateUser, optLogin, optQuit}
	}
	return []string{
		optCreateUser,
		optCreateAccount,
		optDeposit,
		optWithdraw,
		optHistory,
		optBalance,
		optListAccounts,
		optLogout,
		optQuit,
	}
}

// Run loops over the menu until the user quits. Operation errors are shown
// and the loop continues; only prompt interrupts end it early.
func (r *shellRunner) Run() error {
	ui.PrintL1Title("%s", strings.ToUpper(constants.AppName))
	pterm.Info.Println(constants.RoundingNotice)

	for {
		if r.session != nil {
			pterm.Println(pterm.Gray(fmt.Sprintf("Logged in as %s", r.session.Username())))
		}

		choice, err := r.prompt.Menu(r.menu())
		if err != nil {
			return err
		}

		if choice == optQuit {
			quit, err := r.confirmQuit()
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			continue
		}

		if err := r.dispatch(choice); err != nil {
			if errhandler.IsInterrupt(err) {
				r.logout()
				return err
			}
			r.showError(err)
		}
		ui.Separator()
	}
}

func (r *shellRunner) dispatch(choice string) error {
	switch choice {
	case optCreateUser:
		return r.createUser()
	case optLogin:
		return r.login()
	case optLogout:
		r.logout()
		pterm.Success.Println("Logged out")
		return nil
	}

	if r.session == nil {
		return fmt.Errorf("log in first")
	}

	switch choice {
	case optCreateAccount:
		return r.createAccount()
	case optDeposit:
		return r.post(optDeposit)
	case optWithdraw:
		return r.post(optWithdraw)
	case optHistory:
		return r.history()
	case optBalance:
		return r.balance()
	case optListAccounts:
		return r.listAccounts()
	default:
		return fmt.Errorf("unknown option %q", choice)
	}
}

func (r *shellRunner) showError(err error) {
	switch {
	case errors.Is(err, bank.ErrAccessDenied) && r.session != nil:
		// The session expired or was replaced by a newer login.
		r.session = nil
		pterm.Warning.Println("Your session has ended. Please log in again.")
	default:
		pterm.Error.Println(errhandler.Message(err))
	}
}

func (r *shellRunner) confirmQuit() (bool, error) {
	if r.session == nil {
		return true, nil
	}
	quit, err := r.prompt.Confirm(fmt.Sprintf("Log out %s and quit?", r.session.Username()), true)
	if err != nil {
		return false, err
	}
	if quit {
		r.logout()
	}
	return quit, nil
}

func (r *shellRunner) createUser() error {
	username, err := r.prompt.Username()
	if err != nil {
		return err
	}
	username = strings.TrimSpace(username)

	if r.svc.UserExists(username) {
		return fmt.Errorf("user '%s': %w", username, bank.ErrDuplicateUsername)
	}

	password, err := r.askNewPassword()
	if err != nil {
		return err
	}

	h, err := r.svc.CreateUser(username, password)
	if err != nil {
		return err
	}

	views.RenderUserSuccess(h.Username)
	return nil
}

// askNewPassword asks twice and repeats until both entries match.
func (r *shellRunner) askNewPassword() (string, error) {
	for {
		password, err := r.prompt.Password("Password:")
		if err != nil {
			return "", err
		}
		confirm, err := r.prompt.Password("Confirm password:")
		if err != nil {
			return "", err
		}
		if password == confirm {
			return password, nil
		}
		pterm.Warning.Println(errhandler.Message(errPasswordMismatch) + ". Try again.")
	}
}

func (r *shellRunner) login() error {
	if r.session != nil {
		return fmt.Errorf("already logged in as %s, log out first", r.session.Username())
	}
	if r.svc.UserCount() == 0 {
		return errNoUsers
	}

	username, err := r.prompt.Username()
	if err != nil {
		return err
	}
	password, err := r.prompt.Password("Password:")
	if err != nil {
		return err
	}

	sess, err := r.svc.Login(strings.TrimSpace(username), password)
	if err != nil {
		return err
	}
	r.session = sess

	pterm.Success.Printf("Welcome, %s\n", sess.Username())

	accounts, err := r.svc.Accounts(sess)
	if err == nil && len(accounts) == 0 {
		pterm.Warning.Println(noAccountsMsg)
	}
	return nil
}

func (r *shellRunner) logout() {
	if r.session == nil {
		return
	}
	r.svc.Logout(r.session)
	r.session = nil
}

func (r *shellRunner) createAccount() error {
	name, err := r.prompt.AccountName()
	if err != nil {
		return err
	}
	typ, err := r.prompt.AccountType()
	if err != nil {
		return err
	}

	h, err := r.svc.CreateAccount(r.session, name, typ)
	if err != nil {
		return err
	}

	return views.RenderAccountSuccess(h.Index, h.Name, h.Type)
}

const noAccountsMsg = "You do not have any accounts. Create an account to continue."

// pickAccount returns the chosen account, or ok=false when there is none.
func (r *shellRunner) pickAccount() (bank.AccountInfo, bool, error) {
	accounts, err := r.svc.Accounts(r.session)
	if err != nil {
		return bank.AccountInfo{}, false, err
	}
	if len(accounts) == 0 {
		pterm.Warning.Println(noAccountsMsg)
		return bank.AccountInfo{}, false, nil
	}

	options := prompts.AccountOptions(accounts)
	selected, err := r.prompt.Account(options)
	if err != nil {
		return bank.AccountInfo{}, false, err
	}

	for i, opt := range options {
		if opt == selected {
			return accounts[i], true, nil
		}
	}
	return bank.AccountInfo{}, false, fmt.Errorf("account %q: %w", selected, bank.ErrAccountNotFound)
}

func (r *shellRunner) post(kind string) error {
	acc, ok, err := r.pickAccount()
	if err != nil || !ok {
		return err
	}

	input, err := r.prompt.Amount(kind, r.svc.Currency())
	if err != nil {
		return err
	}
	dollars, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("%q is not a number: %w", input, bank.ErrInvalidAmount)
	}

	postFn := r.svc.Deposit
	if kind == optWithdraw {
		postFn = r.svc.Withdraw
	}

	amount, err := postFn(r.session, acc.Index, dollars)
	if err != nil {
		return err
	}

	balance, err := r.svc.Balance(r.session, acc.Index)
	if err != nil {
		return err
	}

	return views.RenderPosted(views.PostedItem{
		Kind:     kind,
		Account:  prompts.AccountLabel(acc),
		Amount:   amount,
		Balance:  balance,
		Currency: r.svc.Currency(),
	})
}

func (r *shellRunner) history() error {
	acc, ok, err := r.pickAccount()
	if err != nil || !ok {
		return err
	}

	txs, err := r.svc.History(r.session, acc.Index)
	if err != nil {
		return err
	}
	balance, err := r.svc.Balance(r.session, acc.Index)
	if err != nil {
		return err
	}

	return views.NewTransactionListView().Render(acc.Name, txs, balance, r.svc.Currency())
}

func (r *shellRunner) balance() error {
	acc, ok, err := r.pickAccount()
	if err != nil || !ok {
		return err
	}

	balance, err := r.svc.Balance(r.session, acc.Index)
	if err != nil {
		return err
	}

	views.RenderBalance(acc.Name, balance, r.svc.Currency())
	return nil
}

func (r *shellRunner) listAccounts() error {
	accounts, err := r.svc.Accounts(r.session)
	if err != nil {
		return err
	}
	return views.NewAccountListView().Render(accounts, r.svc.Currency())
}
