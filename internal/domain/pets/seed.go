package pets

// Seed devuelve el catálogo demo que se muestra cuando no hay backend configurado.
// Son publicaciones sin dueño: nadie puede editarlas ni borrarlas.
func Seed() []Pet {
	return []Pet{
		{
			ID:          1,
			Name:        "贝拉 (Bella)",
			Species:     SpeciesDog,
			Breed:       "金毛寻回犬",
			Age:         "2 岁",
			ImageURL:    "https://images.unsplash.com/photo-1552053831-71594a27632d?auto=format&fit=crop&w=600&q=80",
			Description: "贝拉是一只非常友好且精力充沛的金毛犬，最喜欢玩接球游戏。",
			Tags:        []string{"友好", "精力充沛", "亲近小孩"},
		},
		{
			ID:          2,
			Name:        "露娜 (Luna)",
			Species:     SpeciesCat,
			Breed:       "暹罗猫",
			Age:         "1 岁",
			ImageURL:    "https://images.unsplash.com/photo-1513245543132-31f507417b26?auto=format&fit=crop&w=600&q=80",
			Description: "露娜是一只安静且粘人的暹罗猫，喜欢蜷缩在主人怀里。",
			Tags:        []string{"安静", "粘人", "室内型"},
		},
		{
			ID:          3,
			Name:        "查理 (Charlie)",
			Species:     SpeciesDog,
			Breed:       "比格犬",
			Age:         "3 岁",
			ImageURL:    "https://images.unsplash.com/photo-1537151608828-ea2b11777ee8?auto=format&fit=crop&w=600&q=80",
			Description: "查理是一只充满好奇心的比格犬，热爱户外探险。",
			Tags:        []string{"好奇心强", "爱户外", "贪玩"},
		},
		{
			ID:          4,
			Name:        "米洛 (Milo)",
			Species:     SpeciesCat,
			Breed:       "虎斑猫",
			Age:         "6 个月",
			ImageURL:    "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?auto=format&fit=crop&w=600&q=80",
			Description: "米洛是一只活泼的小猫，总是能给自己找到新鲜乐子。",
			Tags:        []string{"活泼", "幼猫", "好奇"},
		},
		{
			ID:          5,
			Name:        "黛西 (Daisy)",
			Species:     SpeciesRabbit,
			Breed:       "荷兰垂耳兔",
			Age:         "1 岁",
			ImageURL:    "https://images.unsplash.com/photo-1585110396063-7eb2555776d3?auto=format&fit=crop&w=600&q=80",
			Description: "黛西是一只温柔的兔子，喜欢吃胡萝卜和享受安静时光。",
			Tags:        []string{"温柔", "安静", "体型小"},
		},
		{
			ID:          6,
			Name:        "马克斯 (Max)",
			Species:     SpeciesDog,
			Breed:       "德国牧羊犬",
			Age:         "4 岁",
			ImageURL:    "https://images.unsplash.com/photo-1589941013453-ec89f33b5e95?auto=format&fit=crop&w=600&q=80",
			Description: "马克斯是一只忠诚且具有保护欲的伙伴，经过了良好的训练。",
			Tags:        []string{"忠诚", "保护欲", "训练有素"},
		},
	}
}
