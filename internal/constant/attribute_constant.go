package constant

// DefaultAttributeSeed describes one catalog attribute seeded at startup.
type DefaultAttributeSeed struct {
	Key         string
	DisplayName string
	Levels      []DefaultLevelSeed
}

type DefaultLevelSeed struct {
	LevelId     string
	DisplayText string
}

// DefaultJobAttributes is the fixed default catalog. Seeding is idempotent:
// each attribute is inserted only if its key is absent.
var DefaultJobAttributes = []DefaultAttributeSeed{
	{
		Key:         "company_description",
		DisplayName: "Company description",
		Levels: []DefaultLevelSeed{
			{LevelId: "tech_software", DisplayText: "A technology company that develops software solutions to help organizations manage processes more efficiently and scale their operations."},
			{LevelId: "business_services", DisplayText: "A business services firm that provides operational and advisory solutions to help organizations improve performance and manage complex projects."},
			{LevelId: "financial_services", DisplayText: "A financial services company that provides investment management and advisory services to help clients grow and protect their wealth."},
			{LevelId: "healthcare_tech", DisplayText: "A healthcare technology company that develops digital solutions to improve patient outcomes and streamline clinical operations."},
		},
	},
	{
		Key:         "company_size",
		DisplayName: "Company size",
		Levels: []DefaultLevelSeed{
			{LevelId: "small", DisplayText: "50-100 employees"},
			{LevelId: "medium", DisplayText: "100-500 employees"},
			{LevelId: "large", DisplayText: "500+ employees"},
		},
	},
	{
		Key:         "compensation",
		DisplayName: "Compensation",
		Levels: []DefaultLevelSeed{
			{LevelId: "market_aligned", DisplayText: "Market-aligned"},
			{LevelId: "competitive", DisplayText: "Competitive for the market"},
			{LevelId: "above_market", DisplayText: "Above market rate"},
		},
	},
	{
		Key:         "location",
		DisplayName: "Location",
		Levels: []DefaultLevelSeed{
			{LevelId: "remote", DisplayText: "Remote"},
			{LevelId: "mostly_office", DisplayText: "Mostly in office"},
			{LevelId: "hybrid", DisplayText: "Hybrid"},
		},
	},
	{
		Key:         "culture_values",
		DisplayName: "Recent updates on the company's culture and values",
		Levels: []DefaultLevelSeed{
			{LevelId: "dei_current", DisplayText: `In the company's most recent annual public filing (10-K), it states: "We know advancing equality takes all of us, so we're partnering with our ecosystem to design better diversity, equity, and inclusion (DEI) strategies and build more diverse workforces."`},
			{LevelId: "dei_prior", DisplayText: `In prior annual public filings (10-K), the company stated: "We know advancing equality takes all of us, so we're partnering with our ecosystem to design better diversity, equity, and inclusion (DEI) strategies and build more diverse workforces." This language does not appear in the company's most recent filing.`},
			{LevelId: "dei_none", DisplayText: "The company has not made any public statements regarding diversity, equity, and inclusion (DEI) initiatives in their recent filings."},
		},
	},
}
