package services

import (
	"testing"

	"github.com/LucianoPiassi/fintech-app/internal/models"
	"github.com/LucianoPiassi/fintech-app/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		account, err := svc.CreateAccount(user.ID, "Poupança", "Nubank", 1050)
		testutil.AssertNoError(t, err)

		if account.ID == "" {
			t.Fatal("expected non-empty account ID")
		}
		if account.Name != "Poupança" {
			t.Errorf("expected name Poupança, got %s", account.Name)
		}
		if account.BankName != "Nubank" {
			t.Errorf("expected bank Nubank, got %s", account.BankName)
		}
		if account.InitialBalance != 1050 {
			t.Errorf("expected initial balance 1050, got %d", account.InitialBalance)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateAccount(user.ID, "", "", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserAccounts(t *testing.T) {
	t.Run("no_transactions_keeps_initial_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 2500)

		accounts, err := svc.GetUserAccounts(user.ID)
		testutil.AssertNoError(t, err)

		if len(accounts) != 1 {
			t.Fatalf("expected 1 account, got %d", len(accounts))
		}
		if accounts[0].ID != account.ID {
			t.Errorf("expected account %s, got %s", account.ID, accounts[0].ID)
		}
		if accounts[0].CurrentBalance != 2500 {
			t.Errorf("expected current balance 2500, got %d", accounts[0].CurrentBalance)
		}
	})

	t.Run("signed_aggregation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000)

		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeIncome, 500)
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, 200)
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, 100)

		accounts, err := svc.GetUserAccounts(user.ID)
		testutil.AssertNoError(t, err)

		if len(accounts) != 1 {
			t.Fatalf("expected 1 account, got %d", len(accounts))
		}
		// 1000 + 500 - 200 - 100
		if accounts[0].CurrentBalance != 1200 {
			t.Errorf("expected current balance 1200, got %d", accounts[0].CurrentBalance)
		}
	})

	t.Run("isolated_per_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		mine := testutil.CreateTestAccount(t, db, user1.ID)
		theirs := testutil.CreateTestAccount(t, db, user2.ID)
		testutil.CreateTestTransaction(t, db, theirs.ID, models.TransactionTypeIncome, 9999)

		accounts, err := svc.GetUserAccounts(user1.ID)
		testutil.AssertNoError(t, err)

		if len(accounts) != 1 {
			t.Fatalf("expected 1 account, got %d", len(accounts))
		}
		if accounts[0].ID != mine.ID {
			t.Errorf("expected only own account, got %s", accounts[0].ID)
		}
		if accounts[0].CurrentBalance != 0 {
			t.Errorf("expected balance 0, got %d", accounts[0].CurrentBalance)
		}
	})

	t.Run("empty_list_for_new_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		accounts, err := svc.GetUserAccounts(user.ID)
		testutil.AssertNoError(t, err)
		if len(accounts) != 0 {
			t.Errorf("expected no accounts, got %d", len(accounts))
		}
	})
}

func TestGetAccountByID(t *testing.T) {
	t.Run("owned", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		got, err := svc.GetAccountByID(user.ID, account.ID)
		testutil.AssertNoError(t, err)
		if got.ID != account.ID {
			t.Errorf("expected account %s, got %s", account.ID, got.ID)
		}
	})

	t.Run("foreign_account_is_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, owner.ID)

		_, err := svc.GetAccountByID(intruder.ID, account.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_FORBIDDEN")
	})

	t.Run("missing_account_is_forbidden_too", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetAccountByID(user.ID, "00000000-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "ACCOUNT_FORBIDDEN")
	})
}

func TestGetGlobalBalance(t *testing.T) {
	t.Run("sums_across_accounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		a1 := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000)
		a2 := testutil.CreateTestAccountWithBalance(t, db, user.ID, 500)
		testutil.CreateTestTransaction(t, db, a1.ID, models.TransactionTypeIncome, 300)
		testutil.CreateTestTransaction(t, db, a2.ID, models.TransactionTypeExpense, 200)

		total, err := svc.GetGlobalBalance(user.ID)
		testutil.AssertNoError(t, err)

		// (1000 + 300) + (500 - 200)
		if total != 1600 {
			t.Errorf("expected global balance 1600, got %d", total)
		}
	})

	t.Run("zero_for_user_without_accounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		total, err := svc.GetGlobalBalance(user.ID)
		testutil.AssertNoError(t, err)
		if total != 0 {
			t.Errorf("expected global balance 0, got %d", total)
		}
	})

	t.Run("ignores_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestAccountWithBalance(t, db, user1.ID, 700)
		testutil.CreateTestAccountWithBalance(t, db, user2.ID, 99999)

		total, err := svc.GetGlobalBalance(user1.ID)
		testutil.AssertNoError(t, err)
		if total != 700 {
			t.Errorf("expected global balance 700, got %d", total)
		}
	})
}
