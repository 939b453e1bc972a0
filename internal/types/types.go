// Package types provides shared types used across the vendorsel codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Required record fields, in canonical order.
const (
	FieldSupplierID          = "supplier_id"
	FieldPriceScore          = "price_score"
	FieldDeliveryReliability = "delivery_reliability_score"
	FieldQualityRating       = "quality_rating_score"
)

// RequiredFields lists every field a record must carry, in the order they are reported.
var RequiredFields = []string{
	FieldSupplierID,
	FieldPriceScore,
	FieldDeliveryReliability,
	FieldQualityRating,
}

// ScoreFields lists the numeric score fields, in the order they are coerced and range checked.
var ScoreFields = []string{
	FieldPriceScore,
	FieldDeliveryReliability,
	FieldQualityRating,
}

// Input format tags.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Report format constants.
const (
	ReportMarkdown = "markdown"
	ReportJSON     = "json"
	ReportYAML     = "yaml"
	ReportConsole  = "console"
)

// Evaluation mode constants.
const (
	ModeStrict   = "strict"   // first invalid record aborts the session
	ModeTolerant = "tolerant" // invalid records are skipped and reported
)

// Score bounds, inclusive.
const (
	MinScore = 0
	MaxScore = 100
)
