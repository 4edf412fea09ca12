package domain

// Resource - вид ресурса на карте. Порядок индексов фиксирован протоколом
// (bct, pin, Inventory) и никогда не меняется.
type Resource int

const (
	Food Resource = iota
	Linemate
	Deraumere
	Sibur
	Mendiane
	Phiras
	Thystame

	ResourceCount = 7
)

var resourceNames = [ResourceCount]string{
	"food",
	"linemate",
	"deraumere",
	"sibur",
	"mendiane",
	"phiras",
	"thystame",
}

// Densities - целевая плотность каждого ресурса (единиц на клетку карты).
// Используется спавнером при начальном посеве и при периодическом пополнении.
var Densities = [ResourceCount]float64{
	0.5,  // food
	0.3,  // linemate
	0.15, // deraumere
	0.1,  // sibur
	0.1,  // mendiane
	0.08, // phiras
	0.05, // thystame
}

// String реализует интерфейс Stringer (для ответов Look и логов)
func (r Resource) String() string {
	if r < 0 || r >= ResourceCount {
		return "unknown"
	}
	return resourceNames[r]
}

// ResourceFromName конвертирует имя из команды Take/Set в Resource.
// Второе значение false, если имя не известно.
func ResourceFromName(name string) (Resource, bool) {
	for i, n := range resourceNames {
		if n == name {
			return Resource(i), true
		}
	}
	return 0, false
}
