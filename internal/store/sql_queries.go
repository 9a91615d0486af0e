// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveScheduleDay = `
		INSERT INTO schedule_days (
			date,
			payload,
			updated_at
		) VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (date) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = CURRENT_TIMESTAMP;`

	getScheduleDay = `
		SELECT payload
		FROM schedule_days
		WHERE date = $1;`

	getAllScheduleDays = `
		SELECT payload
		FROM schedule_days
		ORDER BY date;`

	deleteScheduleDay = `
		DELETE FROM schedule_days
		WHERE date = $1;`

	deleteAllScheduleDays = `
		DELETE FROM schedule_days;`

	saveBudgetEntry = `
		INSERT INTO budget_entries (
			id,
			amount,
			currency,
			category,
			description,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6);`

	deleteBudgetEntry = `
		DELETE FROM budget_entries
		WHERE id = $1;`

	saveJournalEntry = `
		INSERT INTO journal_entries (
			id,
			created_at,
			title,
			body,
			images
		) VALUES ($1, $2, $3, $4, $5);`

	getJournalEntries = `
		SELECT
			id,
			created_at,
			title,
			body,
			images
		FROM journal_entries
		ORDER BY created_at DESC;`

	deleteJournalEntry = `
		DELETE FROM journal_entries
		WHERE id = $1;`

	saveWeatherSnapshot = `
		INSERT INTO weather_cache (
			location,
			payload,
			updated_at
		) VALUES ($1, $2, $3)
		ON CONFLICT (location) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = excluded.updated_at;`

	getWeatherSnapshot = `
		SELECT payload
		FROM weather_cache
		WHERE location = $1;`

	getMetaValue = `
		SELECT value
		FROM app_meta
		WHERE key = $1;`

	setMetaValue = `
		INSERT INTO app_meta (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value;`
)
