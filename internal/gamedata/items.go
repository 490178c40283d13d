package gamedata

// Item is an item type index: the wire ID minus ItemBias.
type Item int16

const (
	ItemShovelSteel     Item = 256 - ItemBias
	ItemPickaxeSteel    Item = 257 - ItemBias
	ItemAxeSteel        Item = 258 - ItemBias
	ItemFlintAndSteel   Item = 259 - ItemBias
	ItemAppleRed        Item = 260 - ItemBias
	ItemBow             Item = 261 - ItemBias
	ItemArrow           Item = 262 - ItemBias
	ItemCoal            Item = 263 - ItemBias
	ItemDiamond         Item = 264 - ItemBias
	ItemIngotIron       Item = 265 - ItemBias
	ItemIngotGold       Item = 266 - ItemBias
	ItemSwordSteel      Item = 267 - ItemBias
	ItemSwordWood       Item = 268 - ItemBias
	ItemShovelWood      Item = 269 - ItemBias
	ItemPickaxeWood     Item = 270 - ItemBias
	ItemAxeWood         Item = 271 - ItemBias
	ItemSwordStone      Item = 272 - ItemBias
	ItemShovelStone     Item = 273 - ItemBias
	ItemPickaxeStone    Item = 274 - ItemBias
	ItemAxeStone        Item = 275 - ItemBias
	ItemSwordDiamond    Item = 276 - ItemBias
	ItemShovelDiamond   Item = 277 - ItemBias
	ItemPickaxeDiamond  Item = 278 - ItemBias
	ItemAxeDiamond      Item = 279 - ItemBias
	ItemStick           Item = 280 - ItemBias
	ItemBowlEmpty       Item = 281 - ItemBias
	ItemBowlSoup        Item = 282 - ItemBias
	ItemSwordGold       Item = 283 - ItemBias
	ItemShovelGold      Item = 284 - ItemBias
	ItemPickaxeGold     Item = 285 - ItemBias
	ItemAxeGold         Item = 286 - ItemBias
	ItemSilk            Item = 287 - ItemBias
	ItemFeather         Item = 288 - ItemBias
	ItemGunpowder       Item = 289 - ItemBias
	ItemHoeWood         Item = 290 - ItemBias
	ItemHoeStone        Item = 291 - ItemBias
	ItemHoeSteel        Item = 292 - ItemBias
	ItemHoeDiamond      Item = 293 - ItemBias
	ItemHoeGold         Item = 294 - ItemBias
	ItemSeeds           Item = 295 - ItemBias
	ItemWheat           Item = 296 - ItemBias
	ItemBread           Item = 297 - ItemBias
	ItemHelmetLeather   Item = 298 - ItemBias
	ItemPlateLeather    Item = 299 - ItemBias
	ItemLegsLeather     Item = 300 - ItemBias
	ItemBootsLeather    Item = 301 - ItemBias
	ItemHelmetChain     Item = 302 - ItemBias
	ItemPlateChain      Item = 303 - ItemBias
	ItemLegsChain       Item = 304 - ItemBias
	ItemBootsChain      Item = 305 - ItemBias
	ItemHelmetSteel     Item = 306 - ItemBias
	ItemPlateSteel      Item = 307 - ItemBias
	ItemLegsSteel       Item = 308 - ItemBias
	ItemBootsSteel      Item = 309 - ItemBias
	ItemHelmetDiamond   Item = 310 - ItemBias
	ItemPlateDiamond    Item = 311 - ItemBias
	ItemLegsDiamond     Item = 312 - ItemBias
	ItemBootsDiamond    Item = 313 - ItemBias
	ItemHelmetGold      Item = 314 - ItemBias
	ItemPlateGold       Item = 315 - ItemBias
	ItemLegsGold        Item = 316 - ItemBias
	ItemBootsGold       Item = 317 - ItemBias
	ItemFlint           Item = 318 - ItemBias
	ItemPorkRaw         Item = 319 - ItemBias
	ItemPorkCooked      Item = 320 - ItemBias
	ItemPainting        Item = 321 - ItemBias
	ItemAppleGold       Item = 322 - ItemBias
	ItemSign            Item = 323 - ItemBias
	ItemDoorWood        Item = 324 - ItemBias
	ItemBucketEmpty     Item = 325 - ItemBias
	ItemBucketWater     Item = 326 - ItemBias
	ItemBucketLava      Item = 327 - ItemBias
	ItemMinecartEmpty   Item = 328 - ItemBias
	ItemSaddle          Item = 329 - ItemBias
	ItemDoorSteel       Item = 330 - ItemBias
	ItemRedstone        Item = 331 - ItemBias
	ItemSnowball        Item = 332 - ItemBias
	ItemBoat            Item = 333 - ItemBias
	ItemLeather         Item = 334 - ItemBias
	ItemBucketMilk      Item = 335 - ItemBias
	ItemBrick           Item = 336 - ItemBias
	ItemClay            Item = 337 - ItemBias
	ItemReed            Item = 338 - ItemBias
	ItemPaper           Item = 339 - ItemBias
	ItemBook            Item = 340 - ItemBias
	ItemSlimeBall       Item = 341 - ItemBias
	ItemMinecartCrate   Item = 342 - ItemBias
	ItemMinecartPowered Item = 343 - ItemBias
	ItemEgg             Item = 344 - ItemBias
	ItemCompass         Item = 345 - ItemBias
	ItemFishingRod      Item = 346 - ItemBias
	ItemPocketSundial   Item = 347 - ItemBias
	ItemLightStoneDust  Item = 348 - ItemBias
	ItemFishRaw         Item = 349 - ItemBias
	ItemFishCooked      Item = 350 - ItemBias
	ItemRecord13        Item = 2000 - ItemBias
	ItemRecordCat       Item = 2001 - ItemBias
)

var itemNames = map[Item]string{
	ItemShovelSteel:     "shovel_steel",
	ItemPickaxeSteel:    "pickaxe_steel",
	ItemAxeSteel:        "axe_steel",
	ItemFlintAndSteel:   "flint_and_steel",
	ItemAppleRed:        "apple_red",
	ItemBow:             "bow",
	ItemArrow:           "arrow",
	ItemCoal:            "coal",
	ItemDiamond:         "diamond",
	ItemIngotIron:       "ingot_iron",
	ItemIngotGold:       "ingot_gold",
	ItemSwordSteel:      "sword_steel",
	ItemSwordWood:       "sword_wood",
	ItemShovelWood:      "shovel_wood",
	ItemPickaxeWood:     "pickaxe_wood",
	ItemAxeWood:         "axe_wood",
	ItemSwordStone:      "sword_stone",
	ItemShovelStone:     "shovel_stone",
	ItemPickaxeStone:    "pickaxe_stone",
	ItemAxeStone:        "axe_stone",
	ItemSwordDiamond:    "sword_diamond",
	ItemShovelDiamond:   "shovel_diamond",
	ItemPickaxeDiamond:  "pickaxe_diamond",
	ItemAxeDiamond:      "axe_diamond",
	ItemStick:           "stick",
	ItemBowlEmpty:       "bowl_empty",
	ItemBowlSoup:        "bowl_soup",
	ItemSwordGold:       "sword_gold",
	ItemShovelGold:      "shovel_gold",
	ItemPickaxeGold:     "pickaxe_gold",
	ItemAxeGold:         "axe_gold",
	ItemSilk:            "silk",
	ItemFeather:         "feather",
	ItemGunpowder:       "gunpowder",
	ItemHoeWood:         "hoe_wood",
	ItemHoeStone:        "hoe_stone",
	ItemHoeSteel:        "hoe_steel",
	ItemHoeDiamond:      "hoe_diamond",
	ItemHoeGold:         "hoe_gold",
	ItemSeeds:           "seeds",
	ItemWheat:           "wheat",
	ItemBread:           "bread",
	ItemHelmetLeather:   "helmet_leather",
	ItemPlateLeather:    "plate_leather",
	ItemLegsLeather:     "legs_leather",
	ItemBootsLeather:    "boots_leather",
	ItemHelmetChain:     "helmet_chain",
	ItemPlateChain:      "plate_chain",
	ItemLegsChain:       "legs_chain",
	ItemBootsChain:      "boots_chain",
	ItemHelmetSteel:     "helmet_steel",
	ItemPlateSteel:      "plate_steel",
	ItemLegsSteel:       "legs_steel",
	ItemBootsSteel:      "boots_steel",
	ItemHelmetDiamond:   "helmet_diamond",
	ItemPlateDiamond:    "plate_diamond",
	ItemLegsDiamond:     "legs_diamond",
	ItemBootsDiamond:    "boots_diamond",
	ItemHelmetGold:      "helmet_gold",
	ItemPlateGold:       "plate_gold",
	ItemLegsGold:        "legs_gold",
	ItemBootsGold:       "boots_gold",
	ItemFlint:           "flint",
	ItemPorkRaw:         "pork_raw",
	ItemPorkCooked:      "pork_cooked",
	ItemPainting:        "painting",
	ItemAppleGold:       "apple_gold",
	ItemSign:            "sign",
	ItemDoorWood:        "door_wood",
	ItemBucketEmpty:     "bucket_empty",
	ItemBucketWater:     "bucket_water",
	ItemBucketLava:      "bucket_lava",
	ItemMinecartEmpty:   "minecart_empty",
	ItemSaddle:          "saddle",
	ItemDoorSteel:       "door_steel",
	ItemRedstone:        "redstone",
	ItemSnowball:        "snowball",
	ItemBoat:            "boat",
	ItemLeather:         "leather",
	ItemBucketMilk:      "bucket_milk",
	ItemBrick:           "brick",
	ItemClay:            "clay",
	ItemReed:            "reed",
	ItemPaper:           "paper",
	ItemBook:            "book",
	ItemSlimeBall:       "slime_ball",
	ItemMinecartCrate:   "minecart_crate",
	ItemMinecartPowered: "minecart_powered",
	ItemEgg:             "egg",
	ItemCompass:         "compass",
	ItemFishingRod:      "fishing_rod",
	ItemPocketSundial:   "pocket_sundial",
	ItemLightStoneDust:  "light_stone_dust",
	ItemFishRaw:         "fish_raw",
	ItemFishCooked:      "fish_cooked",
	ItemRecord13:        "record13",
	ItemRecordCat:       "record_cat",
}
