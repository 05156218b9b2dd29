package fields

// Project is the registry for the `project` canonical model.
var Project = NewRegistry("project", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "ProjectId", Suffix: "project_id", Kind: KindString},
	{Name: "ScientificName", Suffix: "scientific_name", Kind: KindString},
	{Name: "Initiative", Suffix: "initiative", Kind: KindString},
	{Name: "InitiativeTheme", Suffix: "initiative_theme", Kind: KindString},
	{Name: "Title", Suffix: "title", Kind: KindString},
	{Name: "Description", Suffix: "description", Kind: KindString},
	{Name: "DataContext", Suffix: "data_context", Kind: KindString},
	{Name: "DataTypes", Suffix: "data_types", Kind: KindString},
	{Name: "DataAssayTypes", Suffix: "data_assay_types", Kind: KindString},
	{Name: "Partners", Suffix: "partners", Kind: KindString},
	{Name: "Curator", Suffix: "curator", Kind: KindString},
	{Name: "CuratorOrcid", Suffix: "curator_orcid", Kind: KindString},
})

// ProjectMember is the registry for the `project_member` canonical model.
var ProjectMember = NewRegistry("project_member", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "ProjectId", Suffix: "project_id", Kind: KindString},
	{Name: "Name", Suffix: "name", Kind: KindString},
	{Name: "Orcid", Suffix: "orcid", Kind: KindString},
	{Name: "Organisation", Suffix: "organisation", Kind: KindString},
})
