package fields

// Name is the registry for the `names` canonical model.
var Name = NewRegistry("name", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "CanonicalName", Suffix: "canonical_name", Kind: KindString},
	{Name: "ScientificName", Suffix: "scientific_name", Kind: KindString},
	{Name: "ScientificNameAuthorship", Suffix: "scientific_name_authorship", Kind: KindString},
})
