package imdb

import "strings"

// ColumnType is the warehouse-level type of a dataset column.
type ColumnType string

const (
	TypeString  ColumnType = "STRING"
	TypeInteger ColumnType = "INTEGER"
	TypeFloat   ColumnType = "FLOAT"
	TypeBoolean ColumnType = "BOOLEAN"
)

// Column describes one column of a dataset file's target table.
type Column struct {
	Name     string
	Type     ColumnType
	Repeated bool
}

// DatasetFile is one entry of the fixed IMDb dataset registry.
type DatasetFile struct {
	Name   string
	Schema []Column
}

// RawPrefix is the staging prefix inside the tenant bucket that this
// pipeline owns. ProcessedPrefix and LogsPrefix are reserved for
// downstream consumers and never written by the pipeline itself.
const (
	RawPrefix       = "raw-datasets/"
	ProcessedPrefix = "processed-datasets/"
	LogsPrefix      = "logs/"
)

const compressionSuffix = ".tsv.gz"

// Files is the fixed, ordered registry of IMDb dataset dumps. The order
// only matters for deterministic logging and reporting; each file loads
// into its own table.
var Files = []DatasetFile{
	{
		Name: "name.basics.tsv.gz",
		Schema: []Column{
			{Name: "nconst", Type: TypeString},
			{Name: "primaryName", Type: TypeString},
			{Name: "birthYear", Type: TypeInteger},
			{Name: "deathYear", Type: TypeInteger},
			{Name: "primaryProfession", Type: TypeString},
			{Name: "knownForTitles", Type: TypeString},
		},
	},
	{
		Name: "title.akas.tsv.gz",
		Schema: []Column{
			{Name: "titleId", Type: TypeString},
			{Name: "ordering", Type: TypeInteger},
			{Name: "title", Type: TypeString},
			{Name: "region", Type: TypeString},
			{Name: "language", Type: TypeString},
			{Name: "types", Type: TypeString},
			{Name: "attributes", Type: TypeString},
			{Name: "isOriginalTitle", Type: TypeBoolean},
		},
	},
	{
		Name: "title.basics.tsv.gz",
		Schema: []Column{
			{Name: "tconst", Type: TypeString},
			{Name: "titleType", Type: TypeString},
			{Name: "primaryTitle", Type: TypeString},
			{Name: "originalTitle", Type: TypeString},
			{Name: "isAdult", Type: TypeBoolean},
			{Name: "startYear", Type: TypeInteger},
			{Name: "endYear", Type: TypeInteger},
			{Name: "runtimeMinutes", Type: TypeInteger},
			{Name: "genres", Type: TypeString},
		},
	},
	{
		Name: "title.crew.tsv.gz",
		Schema: []Column{
			{Name: "tconst", Type: TypeString},
			{Name: "directors", Type: TypeString},
			{Name: "writers", Type: TypeString},
		},
	},
	{
		Name: "title.episode.tsv.gz",
		Schema: []Column{
			{Name: "tconst", Type: TypeString},
			{Name: "parentTconst", Type: TypeString},
			{Name: "seasonNumber", Type: TypeInteger},
			{Name: "episodeNumber", Type: TypeInteger},
		},
	},
	{
		Name: "title.principals.tsv.gz",
		Schema: []Column{
			{Name: "tconst", Type: TypeString},
			{Name: "ordering", Type: TypeInteger},
			{Name: "nconst", Type: TypeString},
			{Name: "category", Type: TypeString},
			{Name: "job", Type: TypeString},
			{Name: "characters", Type: TypeString},
		},
	},
	{
		Name: "title.ratings.tsv.gz",
		Schema: []Column{
			{Name: "tconst", Type: TypeString},
			{Name: "averageRating", Type: TypeFloat},
			{Name: "numVotes", Type: TypeInteger},
		},
	},
}

// TableName derives the target table name from a dataset file name:
// "title.basics.tsv.gz" becomes "title_basics". The staging prefix is
// stripped first so the function also accepts full object paths.
func TableName(fileName string) string {
	name := strings.TrimPrefix(fileName, RawPrefix)
	name = strings.TrimSuffix(name, compressionSuffix)
	return strings.ReplaceAll(name, ".", "_")
}

// StagedPath returns the object path a dataset file is staged under.
func StagedPath(fileName string) string {
	return RawPrefix + fileName
}
