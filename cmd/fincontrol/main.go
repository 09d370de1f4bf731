// Command fincontrol is the local front-end for the FinanceControl ledger
// engine. It is presentation glue only: every subcommand calls the entity
// store's mutators or the query surface and prints the result.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"financecontrol/internal/aggregate"
	"financecontrol/internal/catalog"
	"financecontrol/internal/config"
	"financecontrol/internal/database"
	"financecontrol/internal/evaluate"
	"financecontrol/internal/export"
	"financecontrol/internal/identity"
	"financecontrol/internal/logger"
	"financecontrol/internal/models"
	"financecontrol/internal/money"
	"financecontrol/internal/period"
	"financecontrol/internal/store"
	"financecontrol/internal/uuid"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: fincontrol <command> [flags]

commands:
  add      record an income or expense transaction
  list     list transactions for a period
  del      delete a transaction by id
  summary  income/expense/balance totals for a period
  report   six-period trend ending at a period
  budget   manage monthly category budgets (set | list | del)
  goals    manage financial goals (set | show)
  export   write a period's transactions as CSV to stdout`)
}

func run(args []string) error {
	if len(args) < 1 {
		usage()
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	switch args[0] {
	case "add":
		return cmdAdd(cfg, args[1:])
	case "list":
		return cmdList(cfg, args[1:])
	case "del":
		return cmdDelete(cfg, args[1:])
	case "summary":
		return cmdSummary(cfg, args[1:])
	case "report":
		return cmdReport(cfg, args[1:])
	case "budget":
		return cmdBudget(cfg, args[1:])
	case "goals":
		return cmdGoals(cfg, args[1:])
	case "export":
		return cmdExport(cfg, args[1:])
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// openLedger resolves the acting user and opens their ledger over the
// configured snapshot backend.
func openLedger(cfg *config.Config, user string) (*store.Ledger, error) {
	if user == "" {
		user = cfg.User
	}
	if user == "" {
		return nil, fmt.Errorf("no acting user: pass -user or set FINCONTROL_USER")
	}
	repo, err := database.OpenRepository(cfg)
	if err != nil {
		return nil, err
	}
	return store.Open(user, repo)
}

func periodFlags(fs *flag.FlagSet) (*int, *int) {
	now := period.Current()
	month := fs.Int("month", now.Month, "month 1-12")
	year := fs.Int("year", now.Year, "four-digit year")
	return month, year
}

func cmdAdd(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	user := fs.String("user", "", "acting user")
	txType := fs.String("type", "expense", "income or expense")
	category := fs.String("category", "", "transaction category")
	amount := fs.String("amount", "", "decimal amount, e.g. 42.50")
	date := fs.String("date", "", "date YYYY-MM-DD (default today)")
	desc := fs.String("desc", "", "description")
	tags := fs.String("tags", "", "comma-separated tags")
	location := fs.String("location", "", "location")
	recurring := fs.String("recurring", "", "monthly, weekly or yearly")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cents, err := money.ParseCents(*amount)
	if err != nil {
		return fmt.Errorf("invalid -amount %q: %w", *amount, err)
	}

	when := time.Now()
	if *date != "" {
		when, err = time.Parse("2006-01-02", *date)
		if err != nil {
			return fmt.Errorf("invalid -date %q: %w", *date, err)
		}
	}

	tx := models.Transaction{
		Type:        models.TransactionType(*txType),
		Category:    models.Category(*category),
		Amount:      cents,
		Date:        when,
		Description: *desc,
		Location:    *location,
	}
	if *tags != "" {
		tx.Tags = strings.Split(*tags, ",")
	}
	if *recurring != "" {
		tx.Recurring = true
		tx.RecurringType = models.RecurringType(*recurring)
	}

	ledger, err := openLedger(cfg, *user)
	if err != nil {
		return err
	}
	created, err := ledger.CreateTransaction(tx)
	if err != nil {
		return err
	}

	fmt.Printf("added %s  %s  %s  %s\n",
		created.ID, created.Date.Format("2006-01-02"),
		catalog.Label(created.Category), money.FormatCents(created.Amount))
	return nil
}

func cmdList(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	user := fs.String("user", "", "acting user")
	month, year := periodFlags(fs)
	search := fs.String("search", "", "filter by description or category label")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ledger, err := openLedger(cfg, *user)
	if err != nil {
		return err
	}

	p := period.Period{Month: *month, Year: *year}
	ts := store.FilterByTerm(period.Transactions(ledger.Transactions(), p), *search)
	if len(ts) == 0 {
		fmt.Printf("no transactions for %s %d\n", catalog.MonthName(p.Month), p.Year)
		return nil
	}
	for _, t := range ts {
		sign := "+"
		if t.Type == models.TransactionTypeExpense {
			sign = "-"
		}
		fmt.Printf("%s  %s  %s%-10s  %-16s  %s\n",
			t.ID, t.Date.Format("2006-01-02"), sign,
			money.FormatCents(t.Amount), catalog.Label(t.Category), t.Description)
	}
	return nil
}

func cmdDelete(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("del", flag.ExitOnError)
	user := fs.String("user", "", "acting user")
	id := fs.String("id", "", "transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("missing -id")
	}
	if !uuid.IsValid(*id) {
		return fmt.Errorf("invalid -id %q", *id)
	}

	ledger, err := openLedger(cfg, *user)
	if err != nil {
		return err
	}
	if err := ledger.DeleteTransaction(*id); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", *id)
	return nil
}

func cmdSummary(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	user := fs.String("user", "", "acting user")
	month, year := periodFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ledger, err := openLedger(cfg, *user)
	if err != nil {
		return err
	}

	p := period.Period{Month: *month, Year: *year}
	ts := period.Transactions(ledger.Transactions(), p)
	s := aggregate.Summarize(ts)

	fmt.Printf("%s %d  (%d transactions)\n", catalog.MonthName(p.Month), p.Year, s.Count)
	fmt.Printf("  income:   %s\n", money.FormatCents(s.Income))
	fmt.Printf("  expenses: %s\n", money.FormatCents(s.Expenses))
	fmt.Printf("  balance:  %s\n", money.FormatCents(s.Balance))

	if breakdown := aggregate.ByCategory(ts, models.TransactionTypeExpense); len(breakdown) > 0 {
		fmt.Println("  expenses by category:")
		for _, ct := range breakdown {
			fmt.Printf("    %-16s %s\n", catalog.Label(ct.Category), money.FormatCents(ct.Total))
		}
	}

	statuses := evaluate.StatusAll(period.Budgets(ledger.Budgets(), p), ts)
	for _, a := range evaluate.Alerts(statuses) {
		fmt.Printf("  ALERT: %s over budget by %s\n",
			catalog.Label(a.Budget.Category), money.FormatCents(-a.Remaining))
	}
	return nil
}

func cmdReport(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	user := fs.String("user", "", "acting user")
	month, year := periodFlags(fs)
	n := fs.Int("n", 6, "number of periods in the window")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ledger, err := openLedger(cfg, *user)
	if err != nil {
		return err
	}

	end := period.Period{Month: *month, Year: *year}
	series := aggregate.Trend(ledger.Transactions(), period.Window(end, *n))
	running := aggregate.RunningBalance(series)

	fmt.Printf("%-9s %12s %12s %12s %12s\n", "period", "income", "expenses", "balance", "cumulative")
	for i, ps := range series {
		fmt.Printf("%-9s %12s %12s %12s %12s\n",
			ps.Period.String(),
			money.FormatCents(ps.Income), money.FormatCents(ps.Expenses),
			money.FormatCents(ps.Balance), money.FormatCents(running[i]))
	}
	return nil
}

func cmdBudget(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: fincontrol budget <set|list|del> [flags]")
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("budget "+sub, flag.ExitOnError)
	user := fs.String("user", "", "acting user")
	month, year := periodFlags(fs)
	category := fs.String("category", "", "expense category")
	limit := fs.String("limit", "", "monthly limit, decimal")
	alerts := fs.Bool("alerts", true, "surface overspend alerts")
	id := fs.String("id", "", "budget id (del)")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	ledger, err := openLedger(cfg, *user)
	if err != nil {
		return err
	}
	p := period.Period{Month: *month, Year: *year}

	switch sub {
	case "set":
		cents, err := money.ParseCents(*limit)
		if err != nil {
			return fmt.Errorf("invalid -limit %q: %w", *limit, err)
		}
		created, err := ledger.CreateBudget(models.Budget{
			Category:      models.Category(*category),
			MonthlyLimit:  cents,
			Month:         p.Month,
			Year:          p.Year,
			AlertsEnabled: *alerts,
		})
		if err != nil {
			return err
		}
		fmt.Printf("budget %s: %s capped at %s for %s %d\n",
			created.ID, catalog.Label(created.Category),
			money.FormatCents(created.MonthlyLimit), catalog.MonthName(p.Month), p.Year)
		return nil

	case "list":
		budgets := period.Budgets(ledger.Budgets(), p)
		if len(budgets) == 0 {
			fmt.Printf("no budgets for %s %d\n", catalog.MonthName(p.Month), p.Year)
			return nil
		}
		ts := period.Transactions(ledger.Transactions(), p)
		for _, s := range evaluate.StatusAll(budgets, ts) {
			marker := ""
			if s.Overspent {
				marker = "  OVER"
			}
			fmt.Printf("%s  %-16s %s / %s  (%3.0f%%)%s\n",
				s.Budget.ID, catalog.Label(s.Budget.Category),
				money.FormatCents(s.Spent), money.FormatCents(s.Limit),
				s.DisplayRatio*100, marker)
		}
		return nil

	case "del":
		if *id == "" {
			return fmt.Errorf("missing -id")
		}
		if !uuid.IsValid(*id) {
			return fmt.Errorf("invalid -id %q", *id)
		}
		if err := ledger.DeleteBudget(*id); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", *id)
		return nil

	default:
		return fmt.Errorf("unknown budget subcommand %q", sub)
	}
}

func cmdGoals(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: fincontrol goals <set|show> [flags]")
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("goals "+sub, flag.ExitOnError)
	user := fs.String("user", "", "acting user")
	income := fs.String("income", "0", "monthly income target, decimal")
	expenses := fs.String("expenses", "0", "monthly expense limit, decimal")
	savings := fs.String("savings", "0", "savings target, decimal")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	acting := *user
	if acting == "" {
		acting = cfg.User
	}
	if acting == "" {
		return fmt.Errorf("no acting user: pass -user or set FINCONTROL_USER")
	}

	profiles, err := identity.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}

	switch sub {
	case "set":
		goals := models.FinancialGoals{}
		if goals.MonthlyIncomeTarget, err = money.ParseCents(*income); err != nil {
			return fmt.Errorf("invalid -income: %w", err)
		}
		if goals.MonthlyExpenseLimit, err = money.ParseCents(*expenses); err != nil {
			return fmt.Errorf("invalid -expenses: %w", err)
		}
		if goals.SavingsTarget, err = money.ParseCents(*savings); err != nil {
			return fmt.Errorf("invalid -savings: %w", err)
		}
		if _, err := profiles.SaveGoals(acting, goals); err != nil {
			return err
		}
		fmt.Println("goals saved")
		return nil

	case "show":
		profile := profiles.Load(acting)
		if profile.Goals.IsZero() {
			fmt.Println("no goals set")
			return nil
		}

		ledger, err := openLedger(cfg, acting)
		if err != nil {
			return err
		}
		p := period.Current()
		s := aggregate.Summarize(period.Transactions(ledger.Transactions(), p))
		report := evaluate.Goals(profile.Goals, s)

		printGoal("income target", report.Income, false)
		printGoal("expense limit", report.Expense, true)
		printGoal("savings target", report.Savings, false)
		return nil

	default:
		return fmt.Errorf("unknown goals subcommand %q", sub)
	}
}

// printGoal renders one goal line. Accumulation goals with a zero target are
// suppressed entirely; a zero expense ceiling is still shown.
func printGoal(name string, g evaluate.GoalProgress, ceiling bool) {
	if g.Target == 0 && !ceiling {
		return
	}
	state := "in progress"
	if g.Achieved {
		state = "achieved"
	} else if ceiling {
		state = "exceeded"
	}
	fmt.Printf("  %-15s %s / %s  (%s)\n",
		name, money.FormatCents(g.Current), money.FormatCents(g.Target), state)
}

func cmdExport(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	user := fs.String("user", "", "acting user")
	month, year := periodFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ledger, err := openLedger(cfg, *user)
	if err != nil {
		return err
	}

	p := period.Period{Month: *month, Year: *year}
	ts := period.Transactions(ledger.Transactions(), p)
	if len(ts) == 0 {
		return fmt.Errorf("no transactions for %s %d", catalog.MonthName(p.Month), p.Year)
	}

	logger.Get().Infow("exporting period", "file", export.Filename(p), "count", len(ts))
	return export.Write(os.Stdout, ts)
}
