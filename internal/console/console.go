// Package console is the menu-driven front-end: a thin caller of the service
// layer with no business logic of its own.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopware/thrift_association_app/internal/apperrors"
	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/coopware/thrift_association_app/internal/core/services"
	"github.com/coopware/thrift_association_app/internal/dto"
	"github.com/coopware/thrift_association_app/internal/platform/config"
)

// Console runs the interactive menu loop over the service container.
type Console struct {
	svc *services.Container
	cfg *config.Config
	in  *bufio.Scanner
	out io.Writer
}

// New builds a console over the given reader/writer pair.
func New(svc *services.Container, cfg *config.Config, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc: svc,
		cfg: cfg,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run drives login and the main menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to the Cooperative Thrift Association Management System")
	fmt.Fprintln(c.out, strings.Repeat("=", 64))

	if !c.login(ctx) {
		fmt.Fprintln(c.out, "Authentication failed. Exiting...")
		return nil
	}
	user := c.svc.Auth.CurrentUser()
	fmt.Fprintf(c.out, "Login successful! Welcome, %s\n", user.Username)

	if user.MustChangePassword {
		fmt.Fprintln(c.out, "You are signed in with a default password and must change it now.")
		c.changePassword(ctx)
	}

	for {
		c.printMenu()
		switch c.prompt("Choose an option: ") {
		case "1":
			c.addMember(ctx)
		case "2":
			c.listMembers(ctx)
		case "3":
			c.updateMember(ctx)
		case "4":
			c.deposit(ctx)
		case "5":
			c.withdraw(ctx)
		case "6":
			c.statement(ctx)
		case "7":
			c.summaryReport(ctx)
		case "8":
			c.accrueInterest(ctx)
		case "9":
			c.loanMenu(ctx)
		case "10":
			c.monthlyReport(ctx)
		case "11":
			c.userMenu(ctx)
		case "12":
			c.backup(ctx)
		case "13", "":
			c.svc.Auth.Logout(ctx)
			fmt.Fprintln(c.out, "Thank you for using the Association Management System!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *Console) login(ctx context.Context) bool {
	for attempt := 1; attempt <= c.cfg.MaxLoginAttempts; attempt++ {
		fmt.Fprintln(c.out, "\n=== LOGIN REQUIRED ===")
		username := c.prompt("Username: ")
		password := c.prompt("Password: ")
		if _, err := c.svc.Auth.Authenticate(ctx, username, password); err == nil {
			return true
		}
		fmt.Fprintf(c.out, "Invalid credentials. Attempts remaining: %d\n", c.cfg.MaxLoginAttempts-attempt)
	}
	return false
}

func (c *Console) printMenu() {
	user := c.svc.Auth.CurrentUser()
	fmt.Fprintln(c.out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintf(c.out, "MAIN MENU - %s (%s)\n", user.Role, user.Username)
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	fmt.Fprintln(c.out, "1. Add New Member")
	fmt.Fprintln(c.out, "2. View All Members")
	fmt.Fprintln(c.out, "3. Update Member Information")
	fmt.Fprintln(c.out, "4. Make Contribution")
	fmt.Fprintln(c.out, "5. Make Withdrawal")
	fmt.Fprintln(c.out, "6. View Member Statement")
	fmt.Fprintln(c.out, "7. View Summary Report")
	fmt.Fprintln(c.out, "8. Calculate Interest")
	fmt.Fprintln(c.out, "9. Loan Management")
	fmt.Fprintln(c.out, "10. Generate Monthly Report")
	fmt.Fprintln(c.out, "11. User Management")
	fmt.Fprintln(c.out, "12. Create Backup")
	fmt.Fprintln(c.out, "13. Exit")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
}

func (c *Console) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *Console) promptDecimal(label string) (decimal.Decimal, bool) {
	value, err := decimal.NewFromString(c.prompt(label))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid amount.")
		return decimal.Zero, false
	}
	return value, true
}

func (c *Console) promptDate(label string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", c.prompt(label))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid date format. Please use YYYY-MM-DD.")
		return time.Time{}, false
	}
	return date, true
}

// report prints a friendly line for the error taxonomy.
func (c *Console) report(err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		fmt.Fprintln(c.out, "Permission denied.")
	case errors.Is(err, apperrors.ErrNotFound):
		fmt.Fprintln(c.out, "Not found.")
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		fmt.Fprintln(c.out, err.Error())
	default:
		fmt.Fprintf(c.out, "Operation failed: %v\n", err)
	}
}

func (c *Console) addMember(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Add New Member ---")
	req := dto.CreateMemberRequest{
		FirstName:   c.prompt("First name: "),
		LastName:    c.prompt("Last name: "),
		Email:       c.prompt("Email: "),
		PhoneNumber: c.prompt("Phone number: "),
		Address:     c.prompt("Address: "),
		Occupation:  c.prompt("Occupation: "),
	}
	if dob, ok := c.promptDate("Date of birth (YYYY-MM-DD): "); ok {
		req.DateOfBirth = dob
	} else {
		return
	}
	member, err := c.svc.Members.AddMember(ctx, req)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "Member added successfully! ID: %s\n", member.MemberID)
}

func (c *Console) listMembers(ctx context.Context) {
	members, err := c.svc.Members.ListMembers(ctx)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "\n--- All Members ---")
	for _, m := range members {
		fmt.Fprintf(c.out, "ID: %s | Name: %s | Email: %s | Phone: %s | Join Date: %s | Balance: %s | Active: %t\n",
			m.MemberID, m.FullName(), m.Email, m.PhoneNumber,
			m.JoinDate.Format("2006-01-02"), m.Account.Balance.StringFixed(2), m.Active)
	}
}

func (c *Console) updateMember(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Update Member Information ---")
	memberID := c.prompt("Member ID: ")
	req := dto.UpdateMemberRequest{
		Email:       c.prompt("New email (blank to keep): "),
		PhoneNumber: c.prompt("New phone number (blank to keep): "),
	}
	if _, err := c.svc.Members.UpdateMember(ctx, memberID, req); err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Member updated successfully!")
}

func (c *Console) deposit(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Make Contribution ---")
	memberID := c.prompt("Member ID: ")
	amount, ok := c.promptDecimal("Amount: ")
	if !ok {
		return
	}
	description := c.prompt("Description: ")
	txn, err := c.svc.Ledger.Deposit(ctx, memberID, amount, description)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "Contribution successful! Transaction: %s\n", txn.TransactionID)
}

func (c *Console) withdraw(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Make Withdrawal ---")
	memberID := c.prompt("Member ID: ")
	amount, ok := c.promptDecimal("Amount: ")
	if !ok {
		return
	}
	description := c.prompt("Description: ")
	txn, err := c.svc.Ledger.Withdraw(ctx, memberID, amount, description)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "Withdrawal successful! Transaction: %s\n", txn.TransactionID)
}

func (c *Console) statement(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Member Statement ---")
	memberID := c.prompt("Member ID: ")
	stmt, err := c.svc.Ledger.Statement(ctx, memberID)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "Statement for %s (%s)\n", stmt.MemberName, stmt.MemberID)
	for _, txn := range stmt.History {
		fmt.Fprintf(c.out, "%s | %-12s | %10s | %s | %s\n",
			txn.TransactionID, txn.Kind, txn.Amount.StringFixed(2),
			txn.Date.Format("2006-01-02"), txn.Description)
	}
	fmt.Fprintf(c.out, "Contributions: %s | Withdrawals: %s | Interest: %s\n",
		stmt.TotalContributions.StringFixed(2), stmt.TotalWithdrawals.StringFixed(2),
		stmt.TotalInterest.StringFixed(2))
	fmt.Fprintf(c.out, "Current balance: %s\n", stmt.Balance.StringFixed(2))
}

func (c *Console) summaryReport(ctx context.Context) {
	summary, err := c.svc.Reports.AssociationSummary(ctx)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "\n=== ASSOCIATION SUMMARY ===")
	fmt.Fprintf(c.out, "Members: %d active, %d inactive\n", summary.ActiveMembers, summary.InactiveMembers)
	fmt.Fprintf(c.out, "Total Balance: %s\n", summary.TotalBalance.StringFixed(2))
	fmt.Fprintf(c.out, "Total Contributions: %s\n", summary.TotalContributions.StringFixed(2))
	fmt.Fprintf(c.out, "Total Withdrawals: %s\n", summary.TotalWithdrawals.StringFixed(2))
	fmt.Fprintf(c.out, "Total Interest Paid: %s\n", summary.TotalInterest.StringFixed(2))
	for status, count := range summary.LoansByStatus {
		fmt.Fprintf(c.out, "Loans %s: %d\n", status, count)
	}
	fmt.Fprintf(c.out, "Outstanding Loan Balance: %s\n", summary.TotalOutstanding.StringFixed(2))
}

func (c *Console) accrueInterest(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Calculate Interest ---")
	posted, err := c.svc.Ledger.AccrueInterest(ctx)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "Interest calculation completed! Postings: %d\n", posted)
}

func (c *Console) loanMenu(ctx context.Context) {
	for {
		fmt.Fprintln(c.out, "\n--- Loan Management ---")
		fmt.Fprintln(c.out, "1. Apply for Loan")
		fmt.Fprintln(c.out, "2. View All Loans")
		fmt.Fprintln(c.out, "3. Approve Loan")
		fmt.Fprintln(c.out, "4. Disburse Loan")
		fmt.Fprintln(c.out, "5. View Member Loans")
		fmt.Fprintln(c.out, "6. Back to Main Menu")
		switch c.prompt("Choose an option: ") {
		case "1":
			c.applyForLoan(ctx)
		case "2":
			c.listLoans(ctx)
		case "3":
			c.approveLoan(ctx)
		case "4":
			c.disburseLoan(ctx)
		case "5":
			c.memberLoans(ctx)
		case "6", "":
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) applyForLoan(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Apply for Loan ---")
	req := dto.LoanApplicationRequest{MemberID: c.prompt("Member ID: ")}
	amount, ok := c.promptDecimal("Amount: ")
	if !ok {
		return
	}
	req.Amount = amount
	rate, ok := c.promptDecimal("Annual interest rate (%): ")
	if !ok {
		return
	}
	req.InterestRate = rate
	term, err := strconv.Atoi(c.prompt("Term in months: "))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid term.")
		return
	}
	req.TermMonths = term
	req.Purpose = c.prompt("Purpose: ")

	loan, err := c.svc.Loans.Apply(ctx, req)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "Loan application submitted successfully! Loan ID: %s (monthly payment %s)\n",
		loan.LoanID, loan.MonthlyPayment.StringFixed(2))
}

func (c *Console) printLoan(l *domain.Loan) {
	fmt.Fprintf(c.out, "Loan ID: %s | Member: %s | Amount: %s | Rate: %s%% | Term: %d months | Status: %s | Outstanding: %s\n",
		l.LoanID, l.MemberID, l.Principal.StringFixed(2), l.InterestRate.StringFixed(2),
		l.TermMonths, l.Status, l.OutstandingBalance.StringFixed(2))
}

func (c *Console) listLoans(ctx context.Context) {
	loans, err := c.svc.Loans.ListLoans(ctx)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "\n--- All Loans ---")
	if len(loans) == 0 {
		fmt.Fprintln(c.out, "No loans found.")
		return
	}
	for _, l := range loans {
		c.printLoan(l)
	}
}

func (c *Console) approveLoan(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Approve Loan ---")
	if _, err := c.svc.Loans.Approve(ctx, c.prompt("Loan ID: ")); err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Loan approved successfully!")
}

func (c *Console) disburseLoan(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Disburse Loan ---")
	if _, err := c.svc.Loans.Disburse(ctx, c.prompt("Loan ID: ")); err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Loan disbursed successfully!")
}

func (c *Console) memberLoans(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Member Loans ---")
	loans, err := c.svc.Loans.MemberLoans(ctx, c.prompt("Member ID: "))
	if err != nil {
		c.report(err)
		return
	}
	if len(loans) == 0 {
		fmt.Fprintln(c.out, "No loans found for this member.")
		return
	}
	for _, l := range loans {
		c.printLoan(l)
	}
}

func (c *Console) monthlyReport(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Monthly Report ---")
	report, err := c.svc.Reports.MonthlyReport(ctx, c.prompt("Month (YYYY-MM): "))
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "\n=== MONTHLY REPORT - %s ===\n", report.Month)
	fmt.Fprintf(c.out, "Total Members: %d (New: %d)\n", report.TotalMembers, report.NewMembers)
	fmt.Fprintf(c.out, "Total Transactions: %d\n", report.TransactionCount)
	fmt.Fprintf(c.out, "Total Contributions: %s\n", report.TotalContributions.StringFixed(2))
	fmt.Fprintf(c.out, "Total Withdrawals: %s\n", report.TotalWithdrawals.StringFixed(2))
	fmt.Fprintf(c.out, "Total Interest Paid: %s\n", report.TotalInterest.StringFixed(2))
	fmt.Fprintf(c.out, "Net Cash Flow: %s\n", report.NetFlow.StringFixed(2))
	fmt.Fprintf(c.out, "Total Association Balance: %s\n", report.TotalBalance.StringFixed(2))
}

func (c *Console) userMenu(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- User Management ---")
	fmt.Fprintln(c.out, "1. Create User")
	fmt.Fprintln(c.out, "2. Change My Password")
	fmt.Fprintln(c.out, "3. Back to Main Menu")
	switch c.prompt("Choose an option: ") {
	case "1":
		c.createUser(ctx)
	case "2":
		c.changePassword(ctx)
	}
}

func (c *Console) createUser(ctx context.Context) {
	req := dto.CreateUserRequest{
		Username: c.prompt("Username: "),
		Password: c.prompt("Password: "),
		Role:     strings.ToUpper(c.prompt("Role (ADMIN/MANAGER/TELLER/MEMBER): ")),
	}
	user, err := c.svc.Auth.CreateUser(ctx, req)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "User created successfully! ID: %s\n", user.UserID)
}

func (c *Console) changePassword(ctx context.Context) {
	oldPw := c.prompt("Current password: ")
	newPw := c.prompt("New password: ")
	if err := c.svc.Auth.ChangePassword(ctx, oldPw, newPw); err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Password changed successfully!")
}

func (c *Console) backup(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Create Backup ---")
	// The gateway owns the file copies; the console only surfaces the path.
	path, err := c.svc.Backup(ctx)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "Backup created at %s\n", path)
}
