package repository

// SchemaStatements returns the idempotent DDL for all tables. Users and
// tasks live on ReplacingMergeTree keyed by updated_at: updates and deletes
// are versioned row inserts, reads go through FINAL.
func SchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id String,
			name String,
			email String,
			created_at DateTime64(3, 'UTC'),
			updated_at DateTime64(3, 'UTC'),
			is_deleted UInt8 DEFAULT 0
		) ENGINE = ReplacingMergeTree(updated_at)
		ORDER BY id`,

		`CREATE TABLE IF NOT EXISTS tasks (
			id String,
			title String,
			description String,
			completed UInt8 DEFAULT 0,
			user_id String,
			created_at DateTime64(3, 'UTC'),
			updated_at DateTime64(3, 'UTC'),
			is_deleted UInt8 DEFAULT 0
		) ENGINE = ReplacingMergeTree(updated_at)
		ORDER BY id`,

		`CREATE TABLE IF NOT EXISTS sales_items (
			id UUID,
			sale_date String,
			product String,
			quantity Int32,
			price Float64,
			ingested_at DateTime64(3, 'UTC')
		) ENGINE = MergeTree
		ORDER BY (product, sale_date)`,
	}
}

func boolToUInt8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
