package repositories

// CatalogActivity is an immutable catalog entry; selection never mutates it.
type CatalogActivity struct {
	Name       string
	Theme      []string
	EstCostINR int
}

// ActivityCatalogRepository exposes the static per-city activity catalog.
// Cities without a catalog return an empty list, never an error.
type ActivityCatalogRepository interface {
	ByCity(city string) []CatalogActivity
	HasCity(city string) bool
}

var cityActivities = map[string][]CatalogActivity{
	"Delhi": {
		{Name: "Red Fort & Chandni Chowk food walk", Theme: []string{"history", "food"}, EstCostINR: 800},
		{Name: "Humayun's Tomb + Lodhi Garden stroll", Theme: []string{"history", "nature"}, EstCostINR: 400},
		{Name: "India Gate & Kartavya Path evening", Theme: []string{"culture", "family"}, EstCostINR: 0},
		{Name: "Qutub Minar & Mehrauli Archaeological Park", Theme: []string{"history"}, EstCostINR: 600},
		{Name: "Dilli Haat crafts & regional bites", Theme: []string{"shopping", "food"}, EstCostINR: 500},
	},
	"Kolkata": {
		{Name: "Victoria Memorial & Maidan tram loop", Theme: []string{"history", "leisure"}, EstCostINR: 300},
		{Name: "Kumartuli artisan lanes + river sunset", Theme: []string{"culture", "photo"}, EstCostINR: 200},
		{Name: "College Street book-hunt & coffee house", Theme: []string{"books", "food"}, EstCostINR: 250},
		{Name: "Howrah Bridge + old city walk", Theme: []string{"history", "photo"}, EstCostINR: 0},
		{Name: "South Kolkata pice hotels food tour", Theme: []string{"food"}, EstCostINR: 600},
	},
	"Mumbai": {
		{Name: "Gateway of India & Colaba heritage", Theme: []string{"history", "photo"}, EstCostINR: 300},
		{Name: "Marine Drive sunset & Girgaum Chowpatty", Theme: []string{"leisure", "food"}, EstCostINR: 100},
		{Name: "Elephanta Caves (ferry)", Theme: []string{"history", "nature"}, EstCostINR: 800},
		{Name: "Bandra street art & cafes", Theme: []string{"art", "food"}, EstCostINR: 300},
		{Name: "Sanjay Gandhi NP Kanheri Caves", Theme: []string{"nature", "history"}, EstCostINR: 400},
	},
}

type activityCatalogRepository struct{}

func NewActivityCatalogRepository() ActivityCatalogRepository {
	return &activityCatalogRepository{}
}

// ByCity returns a copy so callers can reorder freely.
func (r *activityCatalogRepository) ByCity(city string) []CatalogActivity {
	pool, ok := cityActivities[city]
	if !ok {
		return nil
	}
	out := make([]CatalogActivity, len(pool))
	copy(out, pool)
	return out
}

func (r *activityCatalogRepository) HasCity(city string) bool {
	_, ok := cityActivities[city]
	return ok
}
