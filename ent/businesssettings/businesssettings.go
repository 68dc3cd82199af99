// Code generated by ent, DO NOT EDIT.

package businesssettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the businesssettings type in the database.
	Label = "business_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "settings_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldIndustry holds the string denoting the industry field in the database.
	FieldIndustry = "industry"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldServicesText holds the string denoting the services_text field in the database.
	FieldServicesText = "services_text"
	// FieldTone holds the string denoting the tone field in the database.
	FieldTone = "tone"
	// FieldFaq holds the string denoting the faq field in the database.
	FieldFaq = "faq"
	// FieldCustomInstructions holds the string denoting the custom_instructions field in the database.
	FieldCustomInstructions = "custom_instructions"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldHours holds the string denoting the hours field in the database.
	FieldHours = "hours"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// TenantFieldID holds the string denoting the ID field of the Tenant.
	TenantFieldID = "tenant_id"
	// Table holds the table name of the businesssettings in the database.
	Table = "business_settings"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "business_settings"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
)

// Columns holds all SQL columns for businesssettings fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldIndustry,
	FieldDescription,
	FieldServicesText,
	FieldTone,
	FieldFaq,
	FieldCustomInstructions,
	FieldLocation,
	FieldHours,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BusinessSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByIndustry orders the results by the industry field.
func ByIndustry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndustry, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByServicesText orders the results by the services_text field.
func ByServicesText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServicesText, opts...).ToFunc()
}

// ByTone orders the results by the tone field.
func ByTone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTone, opts...).ToFunc()
}

// ByFaq orders the results by the faq field.
func ByFaq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFaq, opts...).ToFunc()
}

// ByCustomInstructions orders the results by the custom_instructions field.
func ByCustomInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomInstructions, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByHours orders the results by the hours field.
func ByHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHours, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTenantField orders the results by tenant field.
func ByTenantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTenantStep(), sql.OrderByField(field, opts...))
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, TenantFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, TenantTable, TenantColumn),
	)
}
