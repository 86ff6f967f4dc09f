package render

// baseFields is the stock display configuration for the fields most
// trackers ship with. Ordering matters: it is the order fields print in.
var baseFields = []FieldConfig{
	{ID: "issuetype", Name: "Issue Type", Immutable: true,
		Display: &Display{Renderer: "name"}},
	{ID: "parent", Name: "Parent",
		Display: &Display{Renderer: "key"}},
	{ID: "priority", Name: "Priority",
		Display: &Display{Func: priorityFunc}},
	{ID: "created", Name: "Created",
		Display: &Display{Renderer: "date"}},
	{ID: "updated", Name: "Updated",
		Display: &Display{Renderer: "date"}},
	{ID: "duedate", Name: "Due Date",
		Display: &Display{Renderer: "date"}},
	{ID: "assignee", Name: "Assignee",
		Display: &Display{Renderer: "user"}},
	{ID: "status", Name: "Status",
		Display: &Display{Renderer: "name"}},
	{ID: "resolution", Name: "Resolution",
		Display: &Display{Renderer: "name"}},
	{ID: "resolutiondate", Name: "Resolved",
		Display: &Display{Renderer: "date"}},
	{ID: "security", Name: "Security Level",
		Display: &Display{Renderer: "name"}},
	{ID: "creator", Name: "Creator", Verbose: true,
		Display: &Display{Renderer: "user"}},
	{ID: "components", Name: "Components",
		Display: &Display{Renderer: "name_list"}},
	{ID: "fixVersions", Name: "Fix Versions",
		Display: &Display{Renderer: "name_list"}},
	{ID: "labels", Name: "Labels",
		Display: &Display{Renderer: "array"}},
	{ID: "votes", Name: "Votes",
		Display: &Display{Func: votesFunc}},
}

// quietFields are standard fields nobody wants printed by default. Hidden
// rather than ignored so a user override can surface them.
var quietFields = []string{
	"aggregateprogress",
	"aggregatetimeestimate",
	"aggregatetimeoriginalestimate",
	"aggregatetimespent",
	"environment",
	"lastViewed",
	"progress",
	"project",
	"reporter",
	"timeestimate",
	"timeoriginalestimate",
	"timespent",
	"timetracking",
	"versions",
	"watches",
	"worklog",
	"workratio",
}

// priorityFunc suppresses the field when the tracker reports no real
// priority.
func priorityFunc(value any, fields map[string]any) (string, bool) {
	name, ok := keyOf("name")(value, fields)
	if !ok || name == "Undefined" || name == "undefined" {
		return "", false
	}
	return name, true
}

// votesFunc hides zero vote counts.
func votesFunc(value any, fields map[string]any) (string, bool) {
	votes, ok := keyOf("votes")(value, fields)
	if !ok || votes == "0" {
		return "", false
	}
	return votes, true
}

// Default returns the stock display configuration: the base fields in
// print order, with the quiet fields appended hidden.
func Default() *Config {
	fields := make([]FieldConfig, 0, len(baseFields)+len(quietFields))
	fields = append(fields, baseFields...)
	for _, id := range quietFields {
		fields = append(fields, FieldConfig{
			ID:      id,
			Name:    id,
			Display: &Display{Hidden: true},
		})
	}
	return New(fields)
}
