package model

// Tools is the navigation list rendered on every page.
// Entries without endpoints yet are kept so the navigation matches the product surface.
var Tools = []Tool{
	{ID: "jwt", Name: "JWT Decoder", Icon: "key", Description: "Decode and verify JWT tokens", Implemented: true},
	{ID: "uuid", Name: "UUID Generator", Icon: "fingerprint", Description: "Generate UUID v4/v7", Implemented: true},
	{ID: "base64", Name: "Base64", Icon: "code", Description: "Encode/Decode Base64", Implemented: true},
	{ID: "json2java", Name: "JSON to Java", Icon: "braces", Description: "Convert JSON to Java classes", Implemented: false},
	{ID: "cron", Name: "Cron Builder", Icon: "clock", Description: "Build and explain cron expressions", Implemented: true},
	{ID: "regex", Name: "Regex Tester", Icon: "search", Description: "Test regular expressions", Implemented: true},
	{ID: "timestamp", Name: "Timestamp", Icon: "calendar", Description: "Convert timestamps", Implemented: true},
	{ID: "hash", Name: "Hash Generator", Icon: "lock", Description: "Generate hashes and passwords", Implemented: true},
	{ID: "sql", Name: "SQL Formatter", Icon: "database", Description: "Format SQL queries", Implemented: false},
}

// ToolByID returns the tool with the given id, or nil when unknown.
func ToolByID(id string) *Tool {
	for i := range Tools {
		if Tools[i].ID == id {
			return &Tools[i]
		}
	}
	return nil
}
