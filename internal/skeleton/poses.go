package skeleton

// Built-in pose programs, keyed by the catalog's Chinese display name.
var builtin = MustRegistry([]Entry{
	{
		Name: "下犬式", // downward-facing dog
		Program: Program{
			Head:        Pt(45, 70),
			Body:        MustPath(Pt(50, 40), Pt(25, 95)),
			PrimaryLimb: MustPath(Pt(50, 40), Pt(80, 95)),
			PrimaryArm:  MustPath(Pt(25, 95), Pt(50, 40)),
		},
	},
	{
		Name: "樹式", // tree
		Program: Program{
			Head:          Pt(60, 25),
			Body:          MustPath(Pt(60, 32), Pt(60, 65)),
			PrimaryLimb:   MustPath(Pt(60, 65), Pt(60, 105)),
			SecondaryLimb: Some(MustPath(Pt(60, 65), Pt(80, 60), Pt(60, 55))),
			PrimaryArm:    MustPath(Pt(60, 40), Pt(40, 20), Pt(60, 10)),
			SecondaryArm:  Some(MustPath(Pt(60, 40), Pt(80, 20), Pt(60, 10))),
		},
	},
	{
		Name: "戰士二", // warrior II
		Program: Program{
			Head:          Pt(60, 25),
			Body:          MustPath(Pt(60, 32), Pt(60, 60)),
			PrimaryLimb:   MustPath(Pt(60, 60), Pt(90, 80), Pt(90, 105)),
			SecondaryLimb: Some(MustPath(Pt(60, 60), Pt(30, 100))),
			PrimaryArm:    MustPath(Pt(20, 40), Pt(100, 40)),
		},
	},
})

// Default returns the compiled-in registry.
func Default() *Registry {
	return builtin
}
