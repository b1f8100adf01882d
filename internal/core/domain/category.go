package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is seeded outside of this service and only read through the API.
// Fields other than the named ones (filter attributes and the like) are kept
// in Attributes and written back at the top level of the JSON document.
type Category struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Name        string                 `bson:"name" json:"name"`
	Image       string                 `bson:"image,omitempty" json:"image,omitempty"`
	Description string                 `bson:"description,omitempty" json:"description,omitempty"`
	Attributes  map[string]interface{} `bson:",inline" json:"-"`
}

// categoryFields has Category's layout without its JSON methods.
type categoryFields Category

var categoryKeys = []string{"_id", "name", "image", "description"}

func (c Category) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(c.Attributes)+len(categoryKeys))
	for k, v := range c.Attributes {
		doc[k] = v
	}
	doc["_id"] = c.ID
	doc["name"] = c.Name
	if c.Image != "" {
		doc["image"] = c.Image
	}
	if c.Description != "" {
		doc["description"] = c.Description
	}
	return json.Marshal(doc)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var fields categoryFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var rest map[string]interface{}
	if err := json.Unmarshal(data, &rest); err != nil {
		return err
	}
	for _, k := range categoryKeys {
		delete(rest, k)
	}
	fields.Attributes = nil
	if len(rest) > 0 {
		fields.Attributes = rest
	}

	*c = Category(fields)
	return nil
}
