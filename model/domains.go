package model

import (
	"github.com/ARGA-Genomes/arga-transformer/fields"
	"github.com/ARGA-Genomes/arga-transformer/loader"
	"github.com/ARGA-Genomes/arga-transformer/resolver"
)

// Each function below is a §4.G domain accessor: build the scope for
// one canonical model, resolve its registry's fields over that scope,
// and return the materialized records in a deterministic order. They
// share identical shape by design (§4.G: "mechanical per-domain
// extractors") — resolveRegistry does the actual work.

func Collecting(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "collecting", fields.Collecting)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func Organisms(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "organisms", fields.Organism)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func Tissues(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "tissues", fields.Tissue)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func Extractions(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "extractions", fields.Extraction)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func Library(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "library", fields.Library)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func SequencingRuns(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "sequencing_runs", fields.SequencingRun)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func DataProducts(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "data_products", fields.DataProduct)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func Assemblies(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "assembly", fields.Assembly)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func Annotations(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "annotation", fields.Annotation)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func Depositions(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "deposition", fields.Deposition)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func Names(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "names", fields.Name)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func Publications(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "publications", fields.Publication)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func Projects(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "project", fields.Project)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}

func ProjectMembers(ds *loader.Dataset, res *resolver.Resolver) ([]Record, error) {
	m, err := resolveRegistry(ds, res, "project_member", fields.ProjectMember)
	if err != nil {
		return nil, err
	}
	return records(m), nil
}
