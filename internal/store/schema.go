package store

// schemaSQL is applied on every open; all statements are idempotent.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL DEFAULT '',
	existing_savings REAL NOT NULL DEFAULT 0,
	existing_provisions REAL NOT NULL DEFAULT 0,
	has_shared_account INTEGER NOT NULL DEFAULT 0,
	shared_monthly_transfer REAL NOT NULL DEFAULT 0,
	partner_monthly_transfer REAL NOT NULL DEFAULT 0,
	shared_savings_transfer REAL NOT NULL DEFAULT 0,
	partner_shared_savings_transfer REAL NOT NULL DEFAULT 0,
	existing_shared_savings REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS plans (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL REFERENCES profiles(id),
	year INTEGER NOT NULL,
	start_month INTEGER NOT NULL DEFAULT 1,
	monthly_salary_net REAL NOT NULL DEFAULT 0,
	fun_savings_monthly_target REAL NOT NULL DEFAULT 0,
	is_active INTEGER NOT NULL DEFAULT 1,
	UNIQUE(profile_id, year)
);

CREATE TABLE IF NOT EXISTS items (
	id TEXT PRIMARY KEY,
	plan_id TEXT NOT NULL REFERENCES plans(id),
	title TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	kind TEXT NOT NULL,
	frequency TEXT NOT NULL DEFAULT 'monthly',
	amount REAL NOT NULL DEFAULT 0,
	payment_month INTEGER NOT NULL DEFAULT 0,
	allocation TEXT NOT NULL DEFAULT 'prorata',
	sharing TEXT NOT NULL DEFAULT 'individual',
	my_share_percent REAL NOT NULL DEFAULT 50,
	included_in_shared_transfer INTEGER NOT NULL DEFAULT 0,
	is_unplanned INTEGER NOT NULL DEFAULT 0,
	unplanned_month INTEGER NOT NULL DEFAULT 0,
	funded_from_savings REAL NOT NULL DEFAULT 0,
	funded_from_free REAL NOT NULL DEFAULT 0,
	funded_from_shared_savings REAL NOT NULL DEFAULT 0,
	goes_to_savings INTEGER NOT NULL DEFAULT 0,
	is_active INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_items_plan ON items(plan_id);

CREATE TABLE IF NOT EXISTS check_ins (
	id TEXT PRIMARY KEY,
	plan_id TEXT NOT NULL REFERENCES plans(id),
	month INTEGER NOT NULL,
	year INTEGER NOT NULL,
	fun_savings_done INTEGER NOT NULL DEFAULT 0,
	fun_savings_amount REAL NOT NULL DEFAULT 0,
	personal_provisions_done INTEGER NOT NULL DEFAULT 0,
	personal_provisions_amount REAL NOT NULL DEFAULT 0,
	common_transfer_done INTEGER NOT NULL DEFAULT 0,
	common_transfer_amount REAL NOT NULL DEFAULT 0,
	shared_savings_done INTEGER NOT NULL DEFAULT 0,
	shared_savings_amount REAL NOT NULL DEFAULT 0,
	UNIQUE(plan_id, month, year)
);

CREATE TABLE IF NOT EXISTS check_in_lines (
	plan_id TEXT NOT NULL,
	month INTEGER NOT NULL,
	year INTEGER NOT NULL,
	item_id TEXT NOT NULL,
	amount REAL NOT NULL DEFAULT 0,
	PRIMARY KEY (plan_id, month, year, item_id)
);

CREATE TABLE IF NOT EXISTS provision_stocks (
	id TEXT PRIMARY KEY,
	plan_id TEXT NOT NULL REFERENCES plans(id),
	item_id TEXT NOT NULL REFERENCES items(id),
	amount_saved REAL NOT NULL DEFAULT 0,
	UNIQUE(plan_id, item_id)
);
`
