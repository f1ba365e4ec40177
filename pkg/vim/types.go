package vim

const (
	// AllEntityTypes is the sentinel associable type used for custom
	// attributes that are not restricted to a specific kind of object.
	AllEntityTypes string = "All"

	// CardinalitySingle restricts a category to at most one of its tags
	// per inventory object.
	CardinalitySingle string = "single"
)

// CustomAttribute is a legacy key/value annotation definition. An empty
// TargetType means the attribute applies to every kind of inventory object.
type CustomAttribute struct {
	Name       string `json:"name"`
	TargetType string `json:"targetType,omitempty"`
}

type TagCategory struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Cardinality     string   `json:"cardinality"`
	AssociableTypes []string `json:"associableTypes"`
}

type Tag struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
}

// InventoryItem is any manageable object on the platform (vm, host, ...)
type InventoryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Annotation is the value a custom attribute holds on a specific item.
type Annotation struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type TagAssignment struct {
	TagID    string `json:"tagId"`
	ObjectID string `json:"objectId"`
}

// QualifiedTagName composes the Category/Value identifier that tags are
// known by throughout a migration run.
func QualifiedTagName(categoryName, tagName string) string {
	return categoryName + "/" + tagName
}
