package catalog

// Default returns the built-in China city dataset. Prices are indicative and
// intentionally static; real inventory/pricing integration is out of scope.
func Default() *Catalog {
	return New(defaultCities)
}

var defaultCities = []CityEntry{
	{
		ID:              "beijing",
		Name:            "Beijing",
		LocalName:       "北京",
		Image:           "/images/cities/beijing.jpg",
		RecommendedDays: 3,
		Attractions: []Attraction{
			{Name: "Forbidden City", LocalName: "故宫", Duration: "Half day", TicketRMB: 60, Address: "4 Jingshan Front St, Dongcheng", OpeningHours: "08:30-17:00, closed Mondays", Tips: "Book tickets online at least a day ahead; passport required for entry."},
			{Name: "Great Wall at Mutianyu", LocalName: "慕田峪长城", Duration: "Full day", TicketRMB: 45, Address: "Mutianyu Rd, Huairou District", OpeningHours: "07:30-17:30", Tips: "Take the cable car up and the toboggan down."},
			{Name: "Temple of Heaven", LocalName: "天坛", Duration: "2-3 hours", TicketRMB: 34, Address: "1 Tiantan E Rd, Dongcheng", OpeningHours: "06:00-22:00"},
			{Name: "Summer Palace", LocalName: "颐和园", Duration: "Half day", TicketRMB: 30, Address: "19 Xinjiangongmen Rd, Haidian", OpeningHours: "06:30-18:00"},
			{Name: "Hutong Walk in Nanluoguxiang", LocalName: "南锣鼓巷", Duration: "2 hours", TicketRMB: 0, Address: "Nanluoguxiang, Dongcheng", OpeningHours: "All day", Tips: "Go early morning to beat the crowds."},
			{Name: "Lama Temple", LocalName: "雍和宫", Duration: "2 hours", TicketRMB: 25, Address: "12 Yonghegong St, Dongcheng", OpeningHours: "09:00-16:30"},
			{Name: "798 Art District", LocalName: "798艺术区", Duration: "3 hours", TicketRMB: 0, Address: "4 Jiuxianqiao Rd, Chaoyang", OpeningHours: "10:00-18:00"},
			{Name: "Jingshan Park", LocalName: "景山公园", Duration: "1-2 hours", TicketRMB: 2, Address: "44 Jingshan W St, Xicheng", OpeningHours: "06:30-21:00", Tips: "Best sunset view over the Forbidden City."},
		},
		Food: map[Dietary][]FoodOption{
			DietAnything: {
				{Name: "Peking Duck", LocalName: "北京烤鸭", Venue: "Siji Minfu", PriceRMB: 150},
				{Name: "Zhajiangmian", LocalName: "炸酱面", Venue: "Old Beijing Noodle House", PriceRMB: 30},
				{Name: "Jianbing Breakfast Crepe", LocalName: "煎饼", Venue: "street stalls near Guloudajie", PriceRMB: 10},
			},
			DietHalal: {
				{Name: "Lamb Hotpot", LocalName: "涮羊肉", Venue: "Juqi (Niujie)", PriceRMB: 120},
				{Name: "Beef Noodles", LocalName: "牛肉面", Venue: "Niujie Muslim quarter", PriceRMB: 35},
			},
			DietVegetarian: {
				{Name: "Buddhist Vegetarian Banquet", LocalName: "素斋", Venue: "King's Joy near Lama Temple", PriceRMB: 200},
				{Name: "Vegetable Dumplings", LocalName: "素饺子", Venue: "Baoyuan Dumplings", PriceRMB: 40},
			},
			DietSpicy: {
				{Name: "Sichuan Hotpot", LocalName: "四川火锅", Venue: "Haidilao Wangfujing", PriceRMB: 130},
			},
		},
		Hotels: map[Tier]HotelOption{
			TierBudget:  {Name: "Peking Station Hostel", LocalName: "北京站青年旅舍", Tier: TierBudget, PricePerNight: 180, Address: "Dongcheng District"},
			TierComfort: {Name: "Novotel Beijing Xinqiao", LocalName: "北京新侨诺富特", Tier: TierComfort, PricePerNight: 600, Address: "2 Dongjiaominxiang, Dongcheng"},
			TierLuxury:  {Name: "The Peninsula Beijing", LocalName: "王府半岛酒店", Tier: TierLuxury, PricePerNight: 2400, Address: "8 Goldfish Lane, Wangfujing"},
		},
		Transport: map[string]TransportLeg{
			"shanghai/high-speed-rail": {From: "shanghai", To: "beijing", Mode: "High-speed rail (G train)", Duration: "4.5 hours", PriceRMB: 553},
			"xian/high-speed-rail":     {From: "xian", To: "beijing", Mode: "High-speed rail (G train)", Duration: "4.5 hours", PriceRMB: 515},
			"chengdu/flight":           {From: "chengdu", To: "beijing", Mode: "Flight", Duration: "3 hours", PriceRMB: 900},
		},
		Emergency: EmergencyInfo{Police: "110", Ambulance: "120", TouristHotline: "12301", Hospital: "Beijing United Family Hospital, 2 Jiangtai Rd"},
	},
	{
		ID:              "shanghai",
		Name:            "Shanghai",
		LocalName:       "上海",
		Image:           "/images/cities/shanghai.jpg",
		RecommendedDays: 3,
		Attractions: []Attraction{
			{Name: "The Bund", LocalName: "外滩", Duration: "2 hours", TicketRMB: 0, Address: "Zhongshan East 1st Rd, Huangpu", OpeningHours: "All day", Tips: "Come back after dark for the skyline lights."},
			{Name: "Yu Garden", LocalName: "豫园", Duration: "2-3 hours", TicketRMB: 40, Address: "279 Yuyuan Old St, Huangpu", OpeningHours: "09:00-16:30, closed Mondays"},
			{Name: "Shanghai Museum", LocalName: "上海博物馆", Duration: "3 hours", TicketRMB: 0, Address: "201 Renmin Ave, Huangpu", OpeningHours: "09:00-17:00", Tips: "Free entry but reserve online."},
			{Name: "French Concession Walk", LocalName: "法租界", Duration: "Half day", TicketRMB: 0, Address: "Wukang Rd area, Xuhui", OpeningHours: "All day"},
			{Name: "Shanghai Tower Observation Deck", LocalName: "上海中心大厦", Duration: "2 hours", TicketRMB: 180, Address: "501 Yincheng Middle Rd, Pudong", OpeningHours: "08:30-22:00"},
			{Name: "Zhujiajiao Water Town", LocalName: "朱家角", Duration: "Full day", TicketRMB: 60, Address: "Qingpu District", OpeningHours: "08:30-17:00"},
		},
		Food: map[Dietary][]FoodOption{
			DietAnything: {
				{Name: "Xiaolongbao Soup Dumplings", LocalName: "小笼包", Venue: "Jia Jia Tang Bao", PriceRMB: 40},
				{Name: "Shengjianbao Pan-fried Buns", LocalName: "生煎包", Venue: "Yang's Fry-Dumpling", PriceRMB: 25},
				{Name: "Hairy Crab (seasonal)", LocalName: "大闸蟹", Venue: "Wang Bao He", PriceRMB: 300},
			},
			DietHalal: {
				{Name: "Lanzhou Hand-pulled Noodles", LocalName: "兰州拉面", Venue: "halal noodle shops citywide", PriceRMB: 30},
			},
			DietVegetarian: {
				{Name: "Vegetarian Noodles", LocalName: "素面", Venue: "Jade Buddha Temple restaurant", PriceRMB: 45},
				{Name: "Mock Meat Feast", LocalName: "素食", Venue: "Godly (Gongdelin)", PriceRMB: 120},
			},
			DietSpicy: {
				{Name: "Hunan Stir-fry", LocalName: "湘菜", Venue: "Guyi Hunan", PriceRMB: 110},
			},
		},
		Hotels: map[Tier]HotelOption{
			TierBudget:  {Name: "Blue Mountain Bund Hostel", LocalName: "蓝山国际青年旅舍", Tier: TierBudget, PricePerNight: 200, Address: "Huangpu District"},
			TierComfort: {Name: "Jinjiang Metropolo Bund", LocalName: "锦江都城外滩", Tier: TierComfort, PricePerNight: 650, Address: "Near East Nanjing Rd"},
			TierLuxury:  {Name: "Fairmont Peace Hotel", LocalName: "和平饭店", Tier: TierLuxury, PricePerNight: 2800, Address: "20 Nanjing East Rd, the Bund"},
		},
		Transport: map[string]TransportLeg{
			"beijing/high-speed-rail":  {From: "beijing", To: "shanghai", Mode: "High-speed rail (G train)", Duration: "4.5 hours", PriceRMB: 553},
			"hangzhou/high-speed-rail": {From: "hangzhou", To: "shanghai", Mode: "High-speed rail (G train)", Duration: "1 hour", PriceRMB: 73},
			"xian/flight":              {From: "xian", To: "shanghai", Mode: "Flight", Duration: "2.5 hours", PriceRMB: 800},
		},
		Emergency: EmergencyInfo{Police: "110", Ambulance: "120", TouristHotline: "12301", Hospital: "Shanghai East International Medical Center, 551 Pudong South Rd"},
	},
	{
		ID:              "xian",
		Name:            "Xi'an",
		LocalName:       "西安",
		Image:           "/images/cities/xian.jpg",
		RecommendedDays: 2,
		Attractions: []Attraction{
			{Name: "Terracotta Warriors", LocalName: "兵马俑", Duration: "Half day", TicketRMB: 120, Address: "Lintong District", OpeningHours: "08:30-17:00", Tips: "Visit Pit 1 last; it is the most impressive."},
			{Name: "Ancient City Wall Cycling", LocalName: "西安城墙", Duration: "2-3 hours", TicketRMB: 54, Address: "South Gate, Beilin", OpeningHours: "08:00-22:00"},
			{Name: "Muslim Quarter", LocalName: "回民街", Duration: "3 hours", TicketRMB: 0, Address: "Beiyuanmen, Lianhu", OpeningHours: "All day, best at night"},
			{Name: "Big Wild Goose Pagoda", LocalName: "大雁塔", Duration: "2 hours", TicketRMB: 50, Address: "Yanta District", OpeningHours: "08:00-17:00"},
			{Name: "Shaanxi History Museum", LocalName: "陕西历史博物馆", Duration: "3 hours", TicketRMB: 0, Address: "91 Xiaozhai East Rd, Yanta", OpeningHours: "09:00-17:30, closed Mondays"},
		},
		Food: map[Dietary][]FoodOption{
			DietAnything: {
				{Name: "Roujiamo (Chinese Burger)", LocalName: "肉夹馍", Venue: "Fanji Lazhi Roujiamo", PriceRMB: 15},
				{Name: "Biangbiang Noodles", LocalName: "油泼面", Venue: "Muslim Quarter stalls", PriceRMB: 25},
			},
			DietHalal: {
				{Name: "Yangrou Paomo (Lamb Bread Soup)", LocalName: "羊肉泡馍", Venue: "Lao Sun Jia", PriceRMB: 45},
				{Name: "Grilled Lamb Skewers", LocalName: "烤羊肉串", Venue: "Muslim Quarter", PriceRMB: 30},
			},
			DietVegetarian: {
				{Name: "Liangpi Cold Noodles", LocalName: "凉皮", Venue: "Wei Jia Liangpi", PriceRMB: 12},
			},
			DietSpicy: {
				{Name: "Spicy Hot Pot Skewers", LocalName: "麻辣烫", Venue: "Dachehui food street", PriceRMB: 50},
			},
		},
		Hotels: map[Tier]HotelOption{
			TierBudget:  {Name: "Han Tang Inn Hostel", LocalName: "汉唐驿", Tier: TierBudget, PricePerNight: 150, Address: "Inside South Gate"},
			TierComfort: {Name: "Citadines Central Xi'an", LocalName: "馨乐庭", Tier: TierComfort, PricePerNight: 500, Address: "Bell Tower area"},
			TierLuxury:  {Name: "Sofitel Legend People's Grand", LocalName: "索菲特传奇", Tier: TierLuxury, PricePerNight: 1800, Address: "319 Dongxin St"},
		},
		Transport: map[string]TransportLeg{
			"beijing/high-speed-rail": {From: "beijing", To: "xian", Mode: "High-speed rail (G train)", Duration: "4.5 hours", PriceRMB: 515},
			"shanghai/flight":         {From: "shanghai", To: "xian", Mode: "Flight", Duration: "2.5 hours", PriceRMB: 800},
			"chengdu/high-speed-rail": {From: "chengdu", To: "xian", Mode: "High-speed rail (D train)", Duration: "3.5 hours", PriceRMB: 263},
		},
		Emergency: EmergencyInfo{Police: "110", Ambulance: "120", TouristHotline: "12301", Hospital: "Xi'an International Medical Center, Hi-tech Zone"},
	},
	{
		ID:              "chengdu",
		Name:            "Chengdu",
		LocalName:       "成都",
		Image:           "/images/cities/chengdu.jpg",
		RecommendedDays: 2,
		Attractions: []Attraction{
			{Name: "Giant Panda Research Base", LocalName: "大熊猫繁育基地", Duration: "Half day", TicketRMB: 55, Address: "1375 Panda Rd, Chenghua", OpeningHours: "07:30-18:00", Tips: "Arrive before 09:00 when pandas are fed and active."},
			{Name: "Jinli Ancient Street", LocalName: "锦里", Duration: "2-3 hours", TicketRMB: 0, Address: "231 Wuhouci St, Wuhou", OpeningHours: "All day"},
			{Name: "Leshan Giant Buddha Day Trip", LocalName: "乐山大佛", Duration: "Full day", TicketRMB: 80, Address: "Leshan, 2h from Chengdu", OpeningHours: "07:30-18:30"},
			{Name: "People's Park Teahouse", LocalName: "人民公园", Duration: "2 hours", TicketRMB: 0, Address: "9 Shaocheng Rd, Qingyang", OpeningHours: "06:30-22:00", Tips: "Try the traditional ear cleaning with your tea."},
			{Name: "Sichuan Opera Face-Changing Show", LocalName: "川剧变脸", Duration: "2 hours", TicketRMB: 180, Address: "Shufeng Yayun Teahouse", OpeningHours: "Evening shows 20:00"},
		},
		Food: map[Dietary][]FoodOption{
			DietAnything: {
				{Name: "Mapo Tofu", LocalName: "麻婆豆腐", Venue: "Chen Mapo Tofu", PriceRMB: 40},
				{Name: "Dan Dan Noodles", LocalName: "担担面", Venue: "local noodle shops", PriceRMB: 15},
			},
			DietHalal: {
				{Name: "Halal Beef Noodles", LocalName: "清真牛肉面", Venue: "Huangchengba halal restaurants", PriceRMB: 30},
			},
			DietVegetarian: {
				{Name: "Monastery Vegetarian Buffet", LocalName: "素斋", Venue: "Wenshu Monastery", PriceRMB: 60},
			},
			DietSpicy: {
				{Name: "Chengdu Hotpot", LocalName: "成都火锅", Venue: "Shu Jiuxiang", PriceRMB: 120},
				{Name: "Chuanchuan Skewers", LocalName: "串串香", Venue: "Kangerjie", PriceRMB: 80},
			},
		},
		Hotels: map[Tier]HotelOption{
			TierBudget:  {Name: "Mix Hostel", LocalName: "混青年旅舍", Tier: TierBudget, PricePerNight: 140, Address: "Xinghui West Rd"},
			TierComfort: {Name: "Holiday Inn Express Wuhou", LocalName: "智选假日", Tier: TierComfort, PricePerNight: 450, Address: "Wuhou District"},
			TierLuxury:  {Name: "The Temple House", LocalName: "博舍", Tier: TierLuxury, PricePerNight: 2200, Address: "81 Bitieshi St, Jinjiang"},
		},
		Transport: map[string]TransportLeg{
			"xian/high-speed-rail": {From: "xian", To: "chengdu", Mode: "High-speed rail (D train)", Duration: "3.5 hours", PriceRMB: 263},
			"beijing/flight":       {From: "beijing", To: "chengdu", Mode: "Flight", Duration: "3 hours", PriceRMB: 900},
			"guilin/flight":        {From: "guilin", To: "chengdu", Mode: "Flight", Duration: "1.5 hours", PriceRMB: 600},
		},
		Emergency: EmergencyInfo{Police: "110", Ambulance: "120", TouristHotline: "12301", Hospital: "West China Hospital, 37 Guoxue Alley"},
	},
	{
		ID:              "guilin",
		Name:            "Guilin",
		LocalName:       "桂林",
		Image:           "/images/cities/guilin.jpg",
		RecommendedDays: 2,
		Attractions: []Attraction{
			{Name: "Li River Cruise to Yangshuo", LocalName: "漓江游船", Duration: "Full day", TicketRMB: 215, Address: "Zhujiang Pier", OpeningHours: "Departures 09:00-10:30", Tips: "Sit on the right side of the boat for the best karst views."},
			{Name: "Reed Flute Cave", LocalName: "芦笛岩", Duration: "2 hours", TicketRMB: 90, Address: "Ludi Rd, Xiufeng", OpeningHours: "08:00-17:30"},
			{Name: "Elephant Trunk Hill", LocalName: "象鼻山", Duration: "1-2 hours", TicketRMB: 55, Address: "1 Binjiang Rd", OpeningHours: "07:00-18:30"},
			{Name: "Longji Rice Terraces Day Trip", LocalName: "龙脊梯田", Duration: "Full day", TicketRMB: 80, Address: "Longsheng County", OpeningHours: "All day"},
		},
		Food: map[Dietary][]FoodOption{
			DietAnything: {
				{Name: "Guilin Rice Noodles", LocalName: "桂林米粉", Venue: "Chongshan Rice Noodles", PriceRMB: 12},
				{Name: "Beer Fish", LocalName: "啤酒鱼", Venue: "Yangshuo West Street", PriceRMB: 90},
			},
			DietHalal: {
				{Name: "Halal Rice Noodles", LocalName: "清真米粉", Venue: "halal shops near the mosque", PriceRMB: 15},
			},
			DietVegetarian: {
				{Name: "Stuffed Li River Snails (veg option)", LocalName: "素酿田螺", Venue: "local restaurants", PriceRMB: 40},
			},
			DietSpicy: {
				{Name: "Sour-Spicy Fish Stew", LocalName: "酸辣鱼", Venue: "riverside restaurants", PriceRMB: 80},
			},
		},
		Hotels: map[Tier]HotelOption{
			TierBudget:  {Name: "Wada Hostel", LocalName: "瓦舍", Tier: TierBudget, PricePerNight: 120, Address: "Near Elephant Trunk Hill"},
			TierComfort: {Name: "Guilin Bravo Hotel", LocalName: "桂林宾馆", Tier: TierComfort, PricePerNight: 420, Address: "14 South Ronghu Rd"},
			TierLuxury:  {Name: "Shangri-La Guilin", LocalName: "香格里拉", Tier: TierLuxury, PricePerNight: 1500, Address: "111 Huancheng North 2nd Rd"},
		},
		Transport: map[string]TransportLeg{
			"shanghai/flight":          {From: "shanghai", To: "guilin", Mode: "Flight", Duration: "2.5 hours", PriceRMB: 850},
			"chengdu/flight":           {From: "chengdu", To: "guilin", Mode: "Flight", Duration: "1.5 hours", PriceRMB: 600},
			"hangzhou/high-speed-rail": {From: "hangzhou", To: "guilin", Mode: "High-speed rail (G train)", Duration: "6 hours", PriceRMB: 430},
		},
		Emergency: EmergencyInfo{Police: "110", Ambulance: "120", TouristHotline: "12301", Hospital: "Guilin People's Hospital, 12 Wenming Rd"},
	},
	{
		ID:              "hangzhou",
		Name:            "Hangzhou",
		LocalName:       "杭州",
		Image:           "/images/cities/hangzhou.jpg",
		RecommendedDays: 2,
		Attractions: []Attraction{
			{Name: "West Lake Boat Ride", LocalName: "西湖", Duration: "Half day", TicketRMB: 55, Address: "West Lake Scenic Area", OpeningHours: "All day", Tips: "Rent a bike and circle the lake in the early morning."},
			{Name: "Lingyin Temple", LocalName: "灵隐寺", Duration: "3 hours", TicketRMB: 75, Address: "1 Fayun Alley, Xihu", OpeningHours: "07:00-18:00"},
			{Name: "Longjing Tea Plantation", LocalName: "龙井村", Duration: "Half day", TicketRMB: 0, Address: "Longjing Village", OpeningHours: "All day", Tips: "Spring harvest season offers the best tasting."},
			{Name: "Hefang Old Street", LocalName: "河坊街", Duration: "2 hours", TicketRMB: 0, Address: "Hefang St, Shangcheng", OpeningHours: "All day"},
		},
		Food: map[Dietary][]FoodOption{
			DietAnything: {
				{Name: "West Lake Fish in Vinegar", LocalName: "西湖醋鱼", Venue: "Lou Wai Lou", PriceRMB: 120},
				{Name: "Dongpo Pork", LocalName: "东坡肉", Venue: "Grandma's Home", PriceRMB: 45},
			},
			DietHalal: {
				{Name: "Halal Noodle House", LocalName: "清真面馆", Venue: "near Fengqi Rd mosque", PriceRMB: 28},
			},
			DietVegetarian: {
				{Name: "Tea-infused Vegetarian Set", LocalName: "素食茶宴", Venue: "Lingyin Temple restaurant", PriceRMB: 80},
			},
			DietSpicy: {
				{Name: "Spicy River Shrimp", LocalName: "香辣河虾", Venue: "local night markets", PriceRMB: 70},
			},
		},
		Hotels: map[Tier]HotelOption{
			TierBudget:  {Name: "West Lake Youth Hostel", LocalName: "西湖青年旅舍", Tier: TierBudget, PricePerNight: 130, Address: "Nanshan Rd"},
			TierComfort: {Name: "Crystal Orange West Lake", LocalName: "桔子水晶", Tier: TierComfort, PricePerNight: 550, Address: "122 Qingbo St"},
			TierLuxury:  {Name: "Four Seasons West Lake", LocalName: "西子湖四季", Tier: TierLuxury, PricePerNight: 3200, Address: "5 Lingyin Rd"},
		},
		Transport: map[string]TransportLeg{
			"shanghai/high-speed-rail": {From: "shanghai", To: "hangzhou", Mode: "High-speed rail (G train)", Duration: "1 hour", PriceRMB: 73},
			"beijing/high-speed-rail":  {From: "beijing", To: "hangzhou", Mode: "High-speed rail (G train)", Duration: "5.5 hours", PriceRMB: 623},
		},
		Emergency: EmergencyInfo{Police: "110", Ambulance: "120", TouristHotline: "12301", Hospital: "Sir Run Run Shaw Hospital, 3 Qingchun East Rd"},
	},
}
