package internal

import (
	"context"
	"fmt"
	"strings"

	iceberg "github.com/apache/iceberg-go"
	"github.com/apache/iceberg-go/catalog"
	"github.com/apache/iceberg-go/catalog/glue"
	"github.com/apache/iceberg-go/catalog/rest"
	"github.com/apache/iceberg-go/table"
	"github.com/apache/iceberg-go/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/justtrackio/gosoline/pkg/appctx"
	"github.com/justtrackio/gosoline/pkg/cfg"
	gosoGlue "github.com/justtrackio/gosoline/pkg/cloud/aws/glue"
	"github.com/justtrackio/gosoline/pkg/log"
	"github.com/justtrackio/lakehouse-health/internal/health"
)

const (
	CatalogTypeGlue = "glue"
	CatalogTypeRest = "rest"

	FileStatsSummary  = "summary"
	FileStatsManifest = "manifest"

	transformDay = "day"
)

type IcebergSettings struct {
	CatalogType     string              `cfg:"catalog_type" default:"glue"`
	DefaultDatabase string              `cfg:"default_database" default:"main"`
	FileStats       string              `cfg:"file_stats" default:"summary"`
	Rest            IcebergRestSettings `cfg:"rest"`
}

type IcebergRestSettings struct {
	Uri       string `cfg:"uri"`
	Token     string `cfg:"token"`
	Warehouse string `cfg:"warehouse"`
}

type icebergCtxKey struct{}

func ProvideIcebergClient(ctx context.Context, config cfg.Config, logger log.Logger) (*IcebergClient, error) {
	return appctx.Provide(ctx, icebergCtxKey{}, func() (*IcebergClient, error) {
		var err error
		var awsCfg aws.Config
		var cat catalog.Catalog

		settings := &IcebergSettings{}
		if err = config.UnmarshalKey("iceberg", settings); err != nil {
			return nil, fmt.Errorf("could not unmarshal iceberg settings: %w", err)
		}

		if _, awsCfg, err = gosoGlue.NewConfig(ctx, config, logger, "default"); err != nil {
			return nil, fmt.Errorf("could not create aws config for iceberg client: %w", err)
		}

		if cat, err = newCatalog(ctx, settings, awsCfg); err != nil {
			return nil, fmt.Errorf("could not create %s catalog: %w", settings.CatalogType, err)
		}

		return &IcebergClient{
			awsCfg:   awsCfg,
			catalog:  cat,
			settings: settings,
			logger:   logger.WithChannel("iceberg"),
		}, nil
	})
}

func newCatalog(ctx context.Context, settings *IcebergSettings, awsCfg aws.Config) (catalog.Catalog, error) {
	switch settings.CatalogType {
	case CatalogTypeGlue:
		return glue.NewCatalog(glue.WithAwsConfig(awsCfg), glue.WithAwsProperties(map[string]string{
			"s3.force-virtual-addressing": "true",
		})), nil
	case CatalogTypeRest:
		if settings.Rest.Uri == "" {
			return nil, fmt.Errorf("rest catalog requires iceberg.rest.uri")
		}

		opts := make([]rest.Option, 0, 2)
		if settings.Rest.Token != "" {
			opts = append(opts, rest.WithOAuthToken(settings.Rest.Token))
		}

		if settings.Rest.Warehouse != "" {
			opts = append(opts, rest.WithWarehouseLocation(settings.Rest.Warehouse))
		}

		return rest.NewCatalog(ctx, "rest", settings.Rest.Uri, opts...)
	default:
		return nil, fmt.Errorf("unknown catalog type: %s", settings.CatalogType)
	}
}

type IcebergClient struct {
	awsCfg   aws.Config
	catalog  catalog.Catalog
	settings *IcebergSettings
	logger   log.Logger
}

func (c *IcebergClient) LoadTable(ctx context.Context, logicalName string) (*table.Table, error) {
	identifier := c.resolveTableIdentifier(logicalName)

	ctx = utils.WithAwsConfig(ctx, &c.awsCfg)
	tbl, err := c.catalog.LoadTable(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("could not load table %s: %w", identifier, err)
	}

	return tbl, nil
}

func (c *IcebergClient) resolveTableIdentifier(logicalName string) table.Identifier {
	if strings.Contains(logicalName, ".") {
		return strings.Split(logicalName, ".")
	}

	return []string{c.settings.DefaultDatabase, logicalName}
}

// LoadHealthTable materializes the table's snapshot history for health evaluation.
// With withFileSizes the current snapshot's data files are planned to collect their sizes.
func (c *IcebergClient) LoadHealthTable(ctx context.Context, logicalName string, withFileSizes bool) (*health.Table, error) {
	var err error
	var tbl *table.Table

	if tbl, err = c.LoadTable(ctx, logicalName); err != nil {
		return nil, fmt.Errorf("could not load table: %w", err)
	}

	metadata := tbl.Metadata()

	// tables of the default database keep their bare name so reports and tasks are keyed
	// the same way the API addresses them
	namespace, name := "", logicalName
	if idx := strings.LastIndex(logicalName, "."); idx >= 0 {
		namespace, name = logicalName[:idx], logicalName[idx+1:]
	}

	result := &health.Table{
		Name:       name,
		Namespace:  namespace,
		Location:   metadata.Location(),
		Properties: metadata.Properties(),
		Snapshots:  ConvertSnapshots(metadata.Snapshots()),
	}

	if schema := metadata.CurrentSchema(); schema != nil {
		result.CurrentSchemaID = schema.ID
	}

	if current := tbl.CurrentSnapshot(); current != nil {
		id := current.SnapshotID
		result.CurrentSnapshotID = &id
	}

	if withFileSizes {
		if result.DataFileSizes, err = c.dataFileSizes(ctx, tbl); err != nil {
			return nil, fmt.Errorf("could not collect data file sizes: %w", err)
		}
	}

	return result, nil
}

// ConvertSnapshots copies iceberg snapshots into the engine model.
func ConvertSnapshots(snapshots []table.Snapshot) []health.Snapshot {
	result := make([]health.Snapshot, len(snapshots))

	for i, snap := range snapshots {
		result[i] = health.Snapshot{
			SnapshotID:       snap.SnapshotID,
			ParentSnapshotID: snap.ParentSnapshotID,
			TimestampMs:      snap.TimestampMs,
			ManifestList:     snap.ManifestList,
			SchemaID:         snap.SchemaID,
		}

		if snap.Summary == nil {
			continue
		}

		properties := make(map[string]string, len(snap.Summary.Properties))
		for k, v := range snap.Summary.Properties {
			properties[k] = v
		}

		result[i].Summary = &health.Summary{
			Operation:  string(snap.Summary.Operation),
			Properties: properties,
		}
	}

	return result
}

func (c *IcebergClient) dataFileSizes(ctx context.Context, tbl *table.Table) ([]int64, error) {
	if tbl.CurrentSnapshot() == nil {
		return nil, nil
	}

	ctx = utils.WithAwsConfig(ctx, &c.awsCfg)
	tasks, err := tbl.Scan().PlanFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not plan files: %w", err)
	}

	sizes := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		sizes = append(sizes, task.File.FileSizeBytes())
	}

	return sizes, nil
}

func (c *IcebergClient) ListTables(ctx context.Context) ([]table.Identifier, error) {
	var err error
	var t table.Identifier
	var tables []table.Identifier

	ctx = utils.WithAwsConfig(ctx, &c.awsCfg)
	iterator := c.catalog.ListTables(ctx, table.Identifier{c.settings.DefaultDatabase})

	for t, err = range iterator {
		if err != nil {
			return nil, fmt.Errorf("error while iterating tables: %w", err)
		}

		tables = append(tables, t)
	}

	return tables, nil
}

func (c *IcebergClient) ListTableNames(ctx context.Context) ([]string, error) {
	tables, err := c.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]string, len(tables))
	for i, t := range tables {
		// The identifier comes as [database, table]
		result[i] = t[len(t)-1]
	}

	return result, nil
}

// DayPartitionColumn returns the source column of the default spec's day transform.
func (c *IcebergClient) DayPartitionColumn(ctx context.Context, logicalName string) (string, error) {
	var ok bool
	var sourceField iceberg.NestedField

	tbl, err := c.LoadTable(ctx, logicalName)
	if err != nil {
		return "", fmt.Errorf("could not load table: %w", err)
	}

	metadata := tbl.Metadata()
	spec := c.getDefaultPartitionSpec(metadata)
	schema := metadata.CurrentSchema()

	if spec == nil {
		return "", fmt.Errorf("table %s is not partitioned", logicalName)
	}

	for pf := range spec.Fields() {
		if pf.Transform.String() != transformDay {
			continue
		}

		if sourceField, ok = schema.FindFieldByID(pf.SourceID); !ok {
			return "", fmt.Errorf("could not find source field with id %d for partition field %s", pf.SourceID, pf.Name)
		}

		return sourceField.Name, nil
	}

	return "", fmt.Errorf("no day partition found for table %s", logicalName)
}

func (c *IcebergClient) getDefaultPartitionSpec(metadata table.Metadata) *iceberg.PartitionSpec {
	specs := metadata.PartitionSpecs()
	defaultSpecID := metadata.DefaultPartitionSpec()

	if len(specs) == 0 {
		return nil
	}

	if defaultSpecID >= 0 && defaultSpecID < len(specs) {
		return &specs[defaultSpecID]
	}

	return &specs[0]
}

func (c *IcebergClient) FileStatsFromManifests() bool {
	return c.settings.FileStats == FileStatsManifest
}
