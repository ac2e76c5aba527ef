package main

import (
	"strconv"
	"strings"
	"time"
)

// exportDelimiter separates the columns of the flat export. Field values go
// in verbatim, with no escaping: a value containing a tab corrupts its row.
// Known limitation, kept because the spreadsheet the organizers paste into
// expects the raw format.
const exportDelimiter = "\t"

// exportColumns is the fixed header, in the exact order downstream sheets
// expect. Do not reorder.
var exportColumns = []string{
	"name",
	"email",
	"phone",
	"emergency_phone",
	"affiliation",
	"status",
	"sponsor",
	"garment_size_1",
	"garment_size_2",
	"kit",
	"city",
	"age",
	"gender",
	"address",
	"stays_on_site",
	"created_at",
	"payment_amount",
}

// exportRows serializes an already-filtered registration collection into
// flat delimited rows, one per registration, preceded by the header row.
// The formatter applies no filtering of its own.
func exportRows(registrations []Registration, now time.Time) []string {
	rows := make([]string, 0, len(registrations)+1)
	rows = append(rows, strings.Join(exportColumns, exportDelimiter))

	for _, reg := range registrations {
		rows = append(rows, strings.Join(exportFields(reg, now), exportDelimiter))
	}
	return rows
}

// exportFields renders one registration into the fixed column order.
func exportFields(reg Registration, now time.Time) []string {
	age := ""
	if birth, ok := parseBirthDate(reg.BirthDate); ok {
		age = strconv.Itoa(ageAt(birth, now))
	}

	staysOnSite := "no"
	if reg.StaysOnSite {
		staysOnSite = "yes"
	}

	return []string{
		reg.FullName,
		reg.Email,
		reg.Phone,
		reg.EmergencyPhone,
		reg.Affiliation,
		reg.PaymentStatus,
		stringOrEmpty(reg.Sponsor),
		stringOrEmpty(reg.GarmentSize1),
		stringOrEmpty(reg.GarmentSize2),
		reg.KitOption,
		reg.City,
		age,
		stringOrEmpty(reg.Gender),
		reg.Address,
		staysOnSite,
		reg.CreatedAt.Format("2006-01-02"),
		strconv.FormatFloat(reg.PaymentAmount, 'f', 2, 64),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
