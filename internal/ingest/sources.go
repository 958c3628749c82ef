package ingest

// Sources is the fixed list of pages loaded into the store. Re-running the
// loader over the same list inserts duplicate records; clearing the
// collection is out-of-band administration.
var Sources = []string{
	"https://en.wikipedia.org/wiki/Formula_One",
	"https://www.formula1.com/en/latest/all",
	"https://www.formula1.com/en/racing/2024.html",
	"https://www.formula1.com/en/results.html/2024/races.html",
	"https://en.wikipedia.org/wiki/2024_Formula_One_World_Championship",
	"https://en.wikipedia.org/wiki/2023_Formula_One_World_Championship",
	"https://en.wikipedia.org/wiki/2022_Formula_One_World_Championship",
	"https://en.wikipedia.org/wiki/List_of_Formula_One_World_Drivers%27_Champions",
}
