package fields

// Publication is the registry for the `publications` canonical model.
var Publication = NewRegistry("publication", []Spec{
	{Name: "EntityId", Suffix: "publication_entity_id", Kind: KindString},
	{Name: "Title", Suffix: "title", Kind: KindString},
	{Name: "Authors", Suffix: "authors", Kind: KindString},
	{Name: "PublishedYear", Suffix: "published_year", Kind: KindString},
	{Name: "PublishedDate", Suffix: "published_date", Kind: KindString},
	{Name: "Language", Suffix: "language", Kind: KindString},
	{Name: "Publisher", Suffix: "publisher", Kind: KindString},
	{Name: "Doi", Suffix: "doi", Kind: KindString},
	{Name: "PublicationType", Suffix: "publication_type", Kind: KindString},
	{Name: "Citation", Suffix: "citation", Kind: KindString},
	{Name: "SourceUrl", Suffix: "source_url", Kind: KindString},
})
