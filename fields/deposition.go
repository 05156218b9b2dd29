package fields

// Deposition is the registry for the `deposition` canonical model.
var Deposition = NewRegistry("deposition", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "AssemblyId", Suffix: "assembly_id", Kind: KindString},
	{Name: "EventDate", Suffix: "event_date", Kind: KindString},
	{Name: "Url", Suffix: "url", Kind: KindString},
	{Name: "Institution", Suffix: "institution", Kind: KindString},
})
