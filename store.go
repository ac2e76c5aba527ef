package main

import (
	"context"
	"math/big"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecordStore bundles the two remote collections the core works against.
// The production implementation is Postgres; tests plug in an in-memory one.
type RecordStore struct {
	Items         RemoteCollection[DonationItem]
	Registrations RemoteCollection[Registration]
}

// NewPostgresStore builds a RecordStore over a pgx connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *RecordStore {
	return &RecordStore{
		Items:         &pgDonationItems{pool: pool},
		Registrations: &pgRegistrations{pool: pool},
	}
}

// pgDonationItems is the donation_items collection on Postgres.
type pgDonationItems struct {
	pool *pgxpool.Pool
}

const donationItemColumns = `id, name, target_quantity, category, fulfilled, received_quantity, created_at, updated_at`

func (s *pgDonationItems) List(ctx context.Context) ([]DonationItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+donationItemColumns+`
		FROM donation_items
		ORDER BY category, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]DonationItem, 0)
	for rows.Next() {
		var (
			item     DonationItem
			id       pgtype.UUID
			received pgtype.Text
			created  pgtype.Timestamp
			updated  pgtype.Timestamp
		)
		if err := rows.Scan(&id, &item.Name, &item.TargetQuantity, &item.Category,
			&item.Fulfilled, &received, &created, &updated); err != nil {
			return nil, err
		}
		item.ID = uuid.UUID(id.Bytes).String()
		if received.Valid {
			item.ReceivedQuantity = &received.String
		}
		item.CreatedAt = created.Time
		item.UpdatedAt = updated.Time
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *pgDonationItems) Insert(ctx context.Context, item DonationItem) (DonationItem, error) {
	var (
		id      pgtype.UUID
		created pgtype.Timestamp
		updated pgtype.Timestamp
	)
	err := s.pool.QueryRow(ctx, `
		INSERT INTO donation_items (name, target_quantity, category, fulfilled, received_quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, item.Name, item.TargetQuantity, item.Category, item.Fulfilled,
		textOrNull(item.ReceivedQuantity)).Scan(&id, &created, &updated)
	if err != nil {
		return DonationItem{}, err
	}

	item.ID = uuid.UUID(id.Bytes).String()
	item.CreatedAt = created.Time
	item.UpdatedAt = updated.Time
	return item, nil
}

func (s *pgDonationItems) Update(ctx context.Context, item DonationItem) error {
	itemUUID, err := parsePgUUID(item.ID)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		UPDATE donation_items
		SET name = $2, target_quantity = $3, category = $4, fulfilled = $5,
		    received_quantity = $6, updated_at = now()
		WHERE id = $1
	`, itemUUID, item.Name, item.TargetQuantity, item.Category, item.Fulfilled,
		textOrNull(item.ReceivedQuantity))
	return err
}

func (s *pgDonationItems) Delete(ctx context.Context, id string) error {
	itemUUID, err := parsePgUUID(id)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `DELETE FROM donation_items WHERE id = $1`, itemUUID)
	return err
}

// pgRegistrations is the registrations collection on Postgres.
type pgRegistrations struct {
	pool *pgxpool.Pool
}

const registrationColumns = `id, full_name, email, phone, emergency_phone, affiliation,
	city, address, payment_status, sponsor, kit_option, garment_size_1, garment_size_2,
	payment_amount, birth_date, gender, stays_on_site, created_at, updated_at`

func (s *pgRegistrations) List(ctx context.Context) ([]Registration, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+registrationColumns+`
		FROM registrations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows.Scan)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}
	return registrations, rows.Err()
}

func (s *pgRegistrations) Insert(ctx context.Context, reg Registration) (Registration, error) {
	amount, err := numericFromFloat(reg.PaymentAmount)
	if err != nil {
		return Registration{}, err
	}

	var (
		id      pgtype.UUID
		created pgtype.Timestamp
		updated pgtype.Timestamp
	)
	err = s.pool.QueryRow(ctx, `
		INSERT INTO registrations (full_name, email, phone, emergency_phone, affiliation,
			city, address, payment_status, sponsor, kit_option, garment_size_1,
			garment_size_2, payment_amount, birth_date, gender, stays_on_site)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`, reg.FullName, reg.Email, reg.Phone, reg.EmergencyPhone, reg.Affiliation,
		reg.City, reg.Address, reg.PaymentStatus, textOrNull(reg.Sponsor), reg.KitOption,
		textOrNull(reg.GarmentSize1), textOrNull(reg.GarmentSize2), amount,
		dateOrNull(reg.BirthDate), textOrNull(reg.Gender), reg.StaysOnSite).
		Scan(&id, &created, &updated)
	if err != nil {
		return Registration{}, err
	}

	reg.ID = uuid.UUID(id.Bytes).String()
	reg.CreatedAt = created.Time
	reg.UpdatedAt = updated.Time
	return reg, nil
}

func (s *pgRegistrations) Update(ctx context.Context, reg Registration) error {
	regUUID, err := parsePgUUID(reg.ID)
	if err != nil {
		return err
	}
	amount, err := numericFromFloat(reg.PaymentAmount)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		UPDATE registrations
		SET full_name = $2, email = $3, phone = $4, emergency_phone = $5,
		    affiliation = $6, city = $7, address = $8, payment_status = $9,
		    sponsor = $10, kit_option = $11, garment_size_1 = $12,
		    garment_size_2 = $13, payment_amount = $14, birth_date = $15,
		    gender = $16, stays_on_site = $17, updated_at = now()
		WHERE id = $1
	`, regUUID, reg.FullName, reg.Email, reg.Phone, reg.EmergencyPhone,
		reg.Affiliation, reg.City, reg.Address, reg.PaymentStatus,
		textOrNull(reg.Sponsor), reg.KitOption, textOrNull(reg.GarmentSize1),
		textOrNull(reg.GarmentSize2), amount, dateOrNull(reg.BirthDate),
		textOrNull(reg.Gender), reg.StaysOnSite)
	return err
}

func (s *pgRegistrations) Delete(ctx context.Context, id string) error {
	regUUID, err := parsePgUUID(id)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, regUUID)
	return err
}

// scanRegistration converts one registrations row into the API struct.
func scanRegistration(scan func(dest ...any) error) (Registration, error) {
	var (
		reg       Registration
		id        pgtype.UUID
		sponsor   pgtype.Text
		size1     pgtype.Text
		size2     pgtype.Text
		amount    pgtype.Numeric
		birthDate pgtype.Date
		gender    pgtype.Text
		created   pgtype.Timestamp
		updated   pgtype.Timestamp
	)

	err := scan(&id, &reg.FullName, &reg.Email, &reg.Phone, &reg.EmergencyPhone,
		&reg.Affiliation, &reg.City, &reg.Address, &reg.PaymentStatus, &sponsor,
		&reg.KitOption, &size1, &size2, &amount, &birthDate, &gender,
		&reg.StaysOnSite, &created, &updated)
	if err != nil {
		return Registration{}, err
	}

	reg.ID = uuid.UUID(id.Bytes).String()
	if sponsor.Valid {
		reg.Sponsor = &sponsor.String
	}
	if size1.Valid {
		reg.GarmentSize1 = &size1.String
	}
	if size2.Valid {
		reg.GarmentSize2 = &size2.String
	}
	if amount.Valid {
		amountValue, _ := amount.Float64Value()
		reg.PaymentAmount = amountValue.Float64
	}
	if birthDate.Valid {
		dateStr := birthDate.Time.Format("2006-01-02")
		reg.BirthDate = &dateStr
	}
	if gender.Valid {
		reg.Gender = &gender.String
	}
	reg.CreatedAt = created.Time
	reg.UpdatedAt = updated.Time
	return reg, nil
}

// Conversion helpers between API structs and pgtype values.

func parsePgUUID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, err
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func textOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func dateOrNull(dateStr *string) pgtype.Date {
	if dateStr == nil || *dateStr == "" {
		return pgtype.Date{}
	}
	if birth, ok := parseBirthDate(dateStr); ok {
		return pgtype.Date{Time: birth, Valid: true}
	}
	return pgtype.Date{}
}

func numericFromFloat(value float64) (pgtype.Numeric, error) {
	var numeric pgtype.Numeric
	err := numeric.Scan(big.NewFloat(value).Text('f', 2))
	return numeric, err
}
