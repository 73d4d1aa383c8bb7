// Package locations porte la hiérarchie ville → district → quartier utilisée
// par le formulaire de livraison. Un enfant n'est listé que si son parent est
// connu : ville inconnue → aucun district, district inconnu → aucun quartier.
package locations

type District struct {
	Name  string
	Wards []string
}

type City struct {
	Name      string
	Districts []District
}

var cities = []City{
	{
		Name: "TP. Hồ Chí Minh",
		Districts: []District{
			{Name: "Quận 1", Wards: []string{"Phường Bến Nghé", "Phường Bến Thành", "Phường Đa Kao", "Phường Nguyễn Thái Bình"}},
			{Name: "Quận 3", Wards: []string{"Phường Võ Thị Sáu", "Phường 1", "Phường 4", "Phường 9"}},
			{Name: "Quận 7", Wards: []string{"Phường Tân Phong", "Phường Tân Phú", "Phường Phú Mỹ"}},
			{Name: "Quận Bình Thạnh", Wards: []string{"Phường 13", "Phường 17", "Phường 25", "Phường 26"}},
			{Name: "TP. Thủ Đức", Wards: []string{"Phường Linh Trung", "Phường Hiệp Phú", "Phường Thảo Điền"}},
		},
	},
	{
		Name: "Hà Nội",
		Districts: []District{
			{Name: "Quận Ba Đình", Wards: []string{"Phường Điện Biên", "Phường Kim Mã", "Phường Ngọc Hà"}},
			{Name: "Quận Hoàn Kiếm", Wards: []string{"Phường Hàng Bạc", "Phường Hàng Trống", "Phường Tràng Tiền"}},
			{Name: "Quận Cầu Giấy", Wards: []string{"Phường Dịch Vọng", "Phường Nghĩa Đô", "Phường Quan Hoa"}},
		},
	},
}

// Cities liste les villes disponibles, dans l'ordre d'affichage.
func Cities() []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		out = append(out, c.Name)
	}
	return out
}

// DefaultCity est la ville présélectionnée du formulaire de livraison.
func DefaultCity() string {
	if len(cities) == 0 {
		return ""
	}
	return cities[0].Name
}

// Districts retourne les districts d'une ville, vide si la ville est inconnue.
func Districts(city string) []string {
	for _, c := range cities {
		if c.Name == city {
			out := make([]string, 0, len(c.Districts))
			for _, d := range c.Districts {
				out = append(out, d.Name)
			}
			return out
		}
	}
	return nil
}

// Wards retourne les quartiers d'un district, vide si le couple
// ville/district est inconnu.
func Wards(city, district string) []string {
	for _, c := range cities {
		if c.Name != city {
			continue
		}
		for _, d := range c.Districts {
			if d.Name == district {
				out := make([]string, len(d.Wards))
				copy(out, d.Wards)
				return out
			}
		}
	}
	return nil
}

// Valid vérifie qu'un triplet complet est cohérent avec la hiérarchie.
func Valid(city, district, ward string) bool {
	for _, w := range Wards(city, district) {
		if w == ward {
			return true
		}
	}
	return false
}
