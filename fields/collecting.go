package fields

// Collecting is the registry for the `collecting` canonical model.
var Collecting = NewRegistry("collecting", []Spec{
	{Name: "EntityId", Suffix: "entity_id", Kind: KindString},
	{Name: "MaterialSampleId", Suffix: "material_sample_id", Kind: KindString},
	{Name: "ScientificName", Suffix: "scientific_name", Kind: KindString},
	{Name: "OrganismId", Suffix: "organism_id", Kind: KindString},
	{Name: "FieldCollectingId", Suffix: "field_collecting_id", Kind: KindString},
	{Name: "CollectedBy", Suffix: "collected_by", Kind: KindString},
	{Name: "CollectionDate", Suffix: "collection_date", Kind: KindString},
	{Name: "Remarks", Suffix: "remarks", Kind: KindString},
	{Name: "Preparation", Suffix: "preparation", Kind: KindString},
	{Name: "Habitat", Suffix: "habitat", Kind: KindString},
	{Name: "SpecificHost", Suffix: "specific_host", Kind: KindString},
	{Name: "IndividualCount", Suffix: "individual_count", Kind: KindString},
	{Name: "Strain", Suffix: "strain", Kind: KindString},
	{Name: "Isolate", Suffix: "isolate", Kind: KindString},
	{Name: "Permit", Suffix: "permit", Kind: KindString},
	{Name: "SamplingProtocol", Suffix: "sampling_protocol", Kind: KindString},
	{Name: "OrganismKilled", Suffix: "organism_killed", Kind: KindString},
	{Name: "OrganismKillMethod", Suffix: "organism_kill_method", Kind: KindString},
	{Name: "FieldSampleDisposition", Suffix: "field_sample_disposition", Kind: KindString},
	{Name: "FieldNotes", Suffix: "field_notes", Kind: KindString},
	{Name: "EnvironmentBroadScale", Suffix: "environment_broad_scale", Kind: KindString},
	{Name: "EnvironmentLocalScale", Suffix: "environment_local_scale", Kind: KindString},
	{Name: "EnvironmentMedium", Suffix: "environment_medium", Kind: KindString},
	{Name: "Locality", Suffix: "locality", Kind: KindString},
	{Name: "Country", Suffix: "country", Kind: KindString},
	{Name: "CountryCode", Suffix: "country_code", Kind: KindString},
	{Name: "StateProvince", Suffix: "state_province", Kind: KindString},
	{Name: "County", Suffix: "county", Kind: KindString},
	{Name: "Municipality", Suffix: "municipality", Kind: KindString},
	{Name: "Latitude", Suffix: "latitude", Kind: KindString},
	{Name: "Longitude", Suffix: "longitude", Kind: KindString},
	{Name: "LocationGeneralisation", Suffix: "location_generalisation", Kind: KindString},
	{Name: "LocationSource", Suffix: "location_source", Kind: KindString},
	{Name: "Elevation", Suffix: "elevation", Kind: KindString},
	{Name: "ElevationAccuracy", Suffix: "elevation_accuracy", Kind: KindString},
	{Name: "Depth", Suffix: "depth", Kind: KindString},
	{Name: "DepthAccuracy", Suffix: "depth_accuracy", Kind: KindString},
	{Name: "CanonicalName", Suffix: "canonical_name", Kind: KindString},
	{Name: "ScientificNameAuthorship", Suffix: "scientific_name_authorship", Kind: KindString},
})
