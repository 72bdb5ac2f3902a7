package roster

var catalog = []DutyArea{
	{Name: "3. Kat", Floor: "3. Kat", Capacity: 2, Priority: 1, IsActive: true, Description: "Üçüncü kat koridorları ve sınıfları"},
	{Name: "2. Kat", Floor: "2. Kat", Capacity: 2, Priority: 2, IsActive: true, Description: "İkinci kat koridorları ve sınıfları"},
	{Name: "1. Kat", Floor: "1. Kat", Capacity: 2, Priority: 3, IsActive: true, Description: "Birinci kat koridorları ve sınıfları"},
	{Name: "0. Kat (Zemin)", Floor: "0. Kat", Capacity: 2, Priority: 4, IsActive: true, Description: "Zemin kat koridorları ve sınıfları"},
	{Name: "Bahçe", Floor: "Dış Alan", Capacity: 3, Priority: 5, IsActive: true, Description: "Okul bahçesi ve dış alanlar"},
	{Name: "Atölye Katı", Floor: "Atölye", Capacity: 1, Priority: 6, IsActive: true, Description: "Atölye ve teknik alanlar"},
	{Name: "Spor Salonu", Floor: "Spor", Capacity: 1, Priority: 7, IsActive: true, Description: "Spor salonu ve jimnastik alanı"},
}

// DefaultCatalog returns a copy of the fixed duty area catalog used to seed an empty store.
// The returned areas have no ID or creation time.
func DefaultCatalog() []DutyArea {
	areas := make([]DutyArea, len(catalog))
	copy(areas, catalog)
	return areas
}
