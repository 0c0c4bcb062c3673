package record

// Schema names the fixed field set of one collection's export. Fields
// hold at most one value per record; MultiFields keep every value in
// export order (depicted people, per-language descriptions).
type Schema struct {
	Name        string
	Fields      []string
	MultiFields []string
}

// HelledaySchema covers the Helleday portrait collection export.
var HelledaySchema = Schema{
	Name: "helleday",
	Fields: []string{
		"description", "creator", "ensemble", "dimensions", "id_no",
		"image_date", "image_title", "image_type", "part", "premiere",
		"show_title", "collection", "thumbnail", "url", "keywords",
	},
	MultiFields: []string{"depicted", "related_auth", "gender"},
}

// GlassSchema covers the glass plate negative collection export.
var GlassSchema = Schema{
	Name: "glass",
	Fields: []string{
		"image_title", "id_no", "image_date", "creator", "collection",
		"url", "thumbnail", "gender", "keywords", "image_type",
	},
	MultiFields: []string{"depicted", "description"},
}

// StereoSchema covers the stereo card collection export.
var StereoSchema = Schema{
	Name: "stereo",
	Fields: []string{
		"image_title", "id_no", "image_date", "creator", "collection",
		"url", "thumbnail", "keywords", "record_type", "dimensions",
	},
	MultiFields: []string{"depicted", "description"},
}

// GlassUncatSchema covers the uncataloged glass negatives, whose only
// metadata is a filename-style title.
var GlassUncatSchema = Schema{
	Name:   "glass-uncat",
	Fields: []string{"id_no", "image_title"},
}

// AuthoritySchema covers the biographical authority export.
var AuthoritySchema = Schema{
	Name: "authority",
	Fields: []string{
		"last", "full", "first", "dates_places", "dates", "gender",
		"id_no", "corporate_name", "profession", "parallell_name",
		"not_preferred_name",
	},
}

// Schemas indexes every known schema by collection name.
var Schemas = map[string]Schema{
	HelledaySchema.Name:   HelledaySchema,
	GlassSchema.Name:      GlassSchema,
	StereoSchema.Name:     StereoSchema,
	GlassUncatSchema.Name: GlassUncatSchema,
	AuthoritySchema.Name:  AuthoritySchema,
}
