package gamedata

// Block is a block type ID in the 0..255 wire range.
type Block int16

const (
	BlockAir                     Block = 0
	BlockStone                   Block = 1
	BlockGrass                   Block = 2
	BlockDirt                    Block = 3
	BlockCobblestone             Block = 4
	BlockPlanks                  Block = 5
	BlockSapling                 Block = 6
	BlockBedrock                 Block = 7
	BlockWaterStill              Block = 8
	BlockWaterMoving             Block = 9
	BlockLavaStill               Block = 10
	BlockLavaMoving              Block = 11
	BlockSand                    Block = 12
	BlockGravel                  Block = 13
	BlockOreGold                 Block = 14
	BlockOreIron                 Block = 15
	BlockOreCoal                 Block = 16
	BlockWood                    Block = 17
	BlockLeaves                  Block = 18
	BlockSponge                  Block = 19
	BlockGlass                   Block = 20
	BlockCloth                   Block = 35
	BlockPlantYellow             Block = 37
	BlockPlantRed                Block = 38
	BlockMushroomBrown           Block = 39
	BlockMushroomRed             Block = 40
	BlockBlockGold               Block = 41
	BlockBlockSteel              Block = 42
	BlockStairDouble             Block = 43
	BlockStairSingle             Block = 44
	BlockBrick                   Block = 45
	BlockTnt                     Block = 46
	BlockBookShelf               Block = 47
	BlockCobblestoneMossy        Block = 48
	BlockObsidian                Block = 49
	BlockTorchWood               Block = 50
	BlockFire                    Block = 51
	BlockMobSpawner              Block = 52
	BlockStairCompactPlanks      Block = 53
	BlockCrate                   Block = 54
	BlockRedstoneWire            Block = 55
	BlockOreDiamond              Block = 56
	BlockBlockDiamond            Block = 57
	BlockWorkbench               Block = 58
	BlockCrops                   Block = 59
	BlockTilledField             Block = 60
	BlockStoneOvenIdle           Block = 61
	BlockStoneOvenActive         Block = 62
	BlockSignPost                Block = 63
	BlockDoorWood                Block = 64
	BlockLadder                  Block = 65
	BlockMinecartTrack           Block = 66
	BlockStairCompactCobblestone Block = 67
	BlockSignWall                Block = 68
	BlockLever                   Block = 69
	BlockPressurePlateStone      Block = 70
	BlockDoorSteel               Block = 71
	BlockPressurePlatePlanks     Block = 72
	BlockOreRedstone             Block = 73
	BlockOreRedstoneGlowing      Block = 74
	BlockTorchRedstoneIdle       Block = 75
	BlockTorchRedstoneActive     Block = 76
	BlockButton                  Block = 77
	BlockSnow                    Block = 78
	BlockBlockIce                Block = 79
	BlockBlockSnow               Block = 80
	BlockCactus                  Block = 81
	BlockBlockClay               Block = 82
	BlockReed                    Block = 83
	BlockJukebox                 Block = 84
	BlockFence                   Block = 85
	BlockPumpkin                 Block = 86
	BlockBloodStone              Block = 87
	BlockSlowSand                Block = 88
	BlockLightStone              Block = 89
	BlockPortal                  Block = 90
	BlockPumpkinLantern          Block = 91
)

var blockNames = map[Block]string{
	BlockAir:                     "air",
	BlockStone:                   "stone",
	BlockGrass:                   "grass",
	BlockDirt:                    "dirt",
	BlockCobblestone:             "cobblestone",
	BlockPlanks:                  "planks",
	BlockSapling:                 "sapling",
	BlockBedrock:                 "bedrock",
	BlockWaterStill:              "water_still",
	BlockWaterMoving:             "water_moving",
	BlockLavaStill:               "lava_still",
	BlockLavaMoving:              "lava_moving",
	BlockSand:                    "sand",
	BlockGravel:                  "gravel",
	BlockOreGold:                 "ore_gold",
	BlockOreIron:                 "ore_iron",
	BlockOreCoal:                 "ore_coal",
	BlockWood:                    "wood",
	BlockLeaves:                  "leaves",
	BlockSponge:                  "sponge",
	BlockGlass:                   "glass",
	BlockCloth:                   "cloth",
	BlockPlantYellow:             "plant_yellow",
	BlockPlantRed:                "plant_red",
	BlockMushroomBrown:           "mushroom_brown",
	BlockMushroomRed:             "mushroom_red",
	BlockBlockGold:               "block_gold",
	BlockBlockSteel:              "block_steel",
	BlockStairDouble:             "stair_double",
	BlockStairSingle:             "stair_single",
	BlockBrick:                   "brick",
	BlockTnt:                     "tnt",
	BlockBookShelf:               "book_shelf",
	BlockCobblestoneMossy:        "cobblestone_mossy",
	BlockObsidian:                "obsidian",
	BlockTorchWood:               "torch_wood",
	BlockFire:                    "fire",
	BlockMobSpawner:              "mob_spawner",
	BlockStairCompactPlanks:      "stair_compact_planks",
	BlockCrate:                   "crate",
	BlockRedstoneWire:            "redstone_wire",
	BlockOreDiamond:              "ore_diamond",
	BlockBlockDiamond:            "block_diamond",
	BlockWorkbench:               "workbench",
	BlockCrops:                   "crops",
	BlockTilledField:             "tilled_field",
	BlockStoneOvenIdle:           "stone_oven_idle",
	BlockStoneOvenActive:         "stone_oven_active",
	BlockSignPost:                "sign_post",
	BlockDoorWood:                "door_wood",
	BlockLadder:                  "ladder",
	BlockMinecartTrack:           "minecart_track",
	BlockStairCompactCobblestone: "stair_compact_cobblestone",
	BlockSignWall:                "sign_wall",
	BlockLever:                   "lever",
	BlockPressurePlateStone:      "pressure_plate_stone",
	BlockDoorSteel:               "door_steel",
	BlockPressurePlatePlanks:     "pressure_plate_planks",
	BlockOreRedstone:             "ore_redstone",
	BlockOreRedstoneGlowing:      "ore_redstone_glowing",
	BlockTorchRedstoneIdle:       "torch_redstone_idle",
	BlockTorchRedstoneActive:     "torch_redstone_active",
	BlockButton:                  "button",
	BlockSnow:                    "snow",
	BlockBlockIce:                "block_ice",
	BlockBlockSnow:               "block_snow",
	BlockCactus:                  "cactus",
	BlockBlockClay:               "block_clay",
	BlockReed:                    "reed",
	BlockJukebox:                 "jukebox",
	BlockFence:                   "fence",
	BlockPumpkin:                 "pumpkin",
	BlockBloodStone:              "blood_stone",
	BlockSlowSand:                "slow_sand",
	BlockLightStone:              "light_stone",
	BlockPortal:                  "portal",
	BlockPumpkinLantern:          "pumpkin_lantern",
}
