package palette

import "github.com/renato0307/brookplot/internal/lookup"

// Core palette names
const (
	Brand1       Name = "brand1"
	Brand2       Name = "brand2"
	Analogous1   Name = "analogous1"
	Analogous2   Name = "analogous2"
	Contrasting1 Name = "contrasting1"
	Contrasting2 Name = "contrasting2"
	Semantic1    Name = "semantic1"
	Semantic2    Name = "semantic2"
	Semantic3    Name = "semantic3"
	PosNeg1      Name = "pos_neg1"
	PosNeg2      Name = "pos_neg2"
	Political1   Name = "political1"
	Political2   Name = "political2"
	Political3   Name = "political3"
	Political4   Name = "political4"
	Categorical  Name = "categorical"
	Sequential1  Name = "sequential1"
	Sequential2  Name = "sequential2"
	Diverging    Name = "diverging"
	Misc         Name = "misc"
)

// Extended (single hue ramp) palette names
const (
	BrandBlue Name = "brand blue"
	VividBlue Name = "vivid blue"
	Teal      Name = "teal"
	Green     Name = "green"
	Yellow    Name = "yellow"
	Orange    Name = "orange"
	Red       Name = "red"
	Magenta   Name = "magenta"
	Purple    Name = "purple"
)

// BrandBlueHex is the institutional blue used for titles and tags
const BrandBlueHex = "#003A79"

func core(name Name, purpose Purpose, colors ...string) lookup.Entry[Palette] {
	return lookup.Entry[Palette]{
		Key:   string(name),
		Value: Palette{name: name, kind: KindCore, purpose: purpose, colors: colors},
	}
}

func ramp(name Name, colors ...string) lookup.Entry[Palette] {
	return lookup.Entry[Palette]{
		Key:   string(name),
		Value: Palette{name: name, kind: KindExtended, purpose: PurposeRamp, colors: colors},
	}
}

var coreRegistry = lookup.NewTable("palette",
	core(Brand1, PurposeBrand, BrandBlueHex, "#8AC6FF", "#FF9E1B"),
	core(Brand2, PurposeBrand, BrandBlueHex, "#FF9E1B", "#D0D3D4"),
	core(Analogous1, PurposeAnalogous, BrandBlueHex, "#8AC6FF"),
	core(Analogous2, PurposeAnalogous, BrandBlueHex, "#3EB2C6"),
	core(Contrasting1, PurposeContrasting, BrandBlueHex, "#FF9E1B"),
	core(Contrasting2, PurposeContrasting, BrandBlueHex, "#F5CC00"),
	core(Semantic1, PurposeSemantic, "#59C6DA", "#F75C57"),
	core(Semantic2, PurposeSemantic, "#1C8090", "#A00D11", "#E0BB00"),
	core(Semantic3, PurposeSemantic, "#59C6DA", "#F75C57", "#FFDD00"),
	core(PosNeg1, PurposePosNeg, "#5CA632", "#CD1A1C"),
	core(PosNeg2, PurposePosNeg, "#5CA632", "#F5CC00", "#CD1A1C"),
	core(Political1, PurposePolitical, "#1479BB", "#ED3A35"),
	core(Political2, PurposePolitical, "#5AADF6", "#F98B83"),
	core(Political3, PurposePolitical, "#1479BB", "#ED3A35", "#E0BB00"),
	core(Political4, PurposePolitical, "#5AADF6", "#F98B83", "#FFE926"),
	core(Categorical, PurposeCategorical,
		"#2599adff", "#00649fff", "#fd9d1fff",
		"#f5cc05ff", "#de60a1ff", "#9e0d12ff"),
	core(Sequential1, PurposeSequential,
		"#00649fff", "#0f78baff", "#1c8ad6ff",
		"#2e97eaff", "#56adf6ff", "#87c4feff", "#bcdefbff"),
	core(Sequential2, PurposeSequential,
		"#0d636fff", "#008080ff", "#009a80ff", "#2bb275ff",
		"#6dc960ff", "#b1dc44ff", "#fce829ff"),
	core(Diverging, PurposeDiverging,
		"#0f78baff", "#739fceff", "#b1c5deff",
		"#efefefff", "#f6b5a9ff", "#f07867ff", "#e02928ff"),
	core(Misc, PurposeMisc, "#3EB2C6", BrandBlueHex, "#F5CC00"),
)

var extendedRegistry = lookup.NewTable("extended palette",
	ramp(BrandBlue, "#022A4E", "#003A70", "#1A4E80", "#326295", "#517EAD", "#7098C3", "#8DADD0", "#A8BDD5", "#DDE5ED"),
	ramp(VividBlue, "#023147", "#004B6E", "#00649F", "#1479BB", "#1E8AD6", "#3398EA", "#5AADF6", "#8AC6FF", "#BFDFFC"),
	ramp(Teal, "#032B30", "#09484F", "#116470", "#1C8090", "#2A9AAD", "#3EB2C6", "#59C6DA", "#7CD9EA", "#A6E9F5"),
	ramp(Green, "#1A3404", "#294D0A", "#33660F", "#45821B", "#5CA632", "#7DBF52", "#9CD674", "#BDED9D", "#DEF5CC"),
	ramp(Yellow, "#594C09", "#877414", "#C7A70A", "#E0BB00", "#F5CC00", "#FFDD00", "#FFE926", "#FFF170", "#FFF9C2"),
	ramp(Orange, "#663205", "#994B08", "#B85B0A", "#F26D00", "#FF851A", "#FF9E1B", "#FFB24D", "#FEC87F", "#FBD9A5"),
	ramp(Red, "#660507", "#A00D11", "#CD1A1C", "#E22827", "#ED3A35", "#F75C57", "#F98B83", "#FCB0AA", "#FDD7D4"),
	ramp(Magenta, "#510831", "#8D1655", "#A82168", "#BF317B", "#D2468E", "#E160A2", "#EC81B7", "#F5A8CF", "#FAD4E7"),
	ramp(Purple, "#3E2C72", "#533C91", "#6A50AD", "#7C60BF", "#8E72D0", "#9C82D9", "#B59DEA", "#D0BEF5", "#E9E0FC"),
)

// colormapCore lists the core palettes that work as continuous colormaps
var colormapCore = []Name{Diverging, Sequential1, Sequential2, Political2}
